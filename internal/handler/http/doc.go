// Package http implements the REST API of the nutrition tracker.
//
// It wires chi routes for authentication, nutrient inference, food entries,
// summaries and goals, together with the middleware chain (CORS, tracing,
// access logging, panic recovery, compression, timeouts, body limits and
// bearer authentication) that runs before requests reach the service layer.
package http

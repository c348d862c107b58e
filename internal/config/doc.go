// Package config loads, merges and validates the configuration of the
// nutri-track server and client.
//
// Sources, later ones overriding non-zero fields of earlier ones:
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config

// Package workers runs the background jobs of the server.
//
// A Worker blocks in Run until its context is cancelled. Workers starts a
// set of them together and waits for all of them to return.
package workers

import "context"

// Worker is a background job. Run must return once ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// ExpiringCache is a cache that only drops expired entries on demand.
type ExpiringCache interface {
	RemoveExpired() int
}

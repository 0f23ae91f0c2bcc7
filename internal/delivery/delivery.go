// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker) managed by the
// application lifecycle.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}

// Package delivery defines the contract every transport entrypoint
// implements. The application core stays ignorant of how requests arrive.
package delivery

import "context"

// Delivery is a running transport (HTTP server, worker, ...).
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}

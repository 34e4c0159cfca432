// Package delivery defines the transports the storefront binary runs.
package delivery

import "context"

// Delivery is a long-running transport started by the fx app.
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}

// Package delivery defines the contract shared by every inbound transport.
package delivery

import "context"

// Delivery is a long-running server started by fx in its own goroutine.
type Delivery interface {
	Serve(ctx context.Context) error
}

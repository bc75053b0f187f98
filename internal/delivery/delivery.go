// Package delivery holds the servers the commands start.
package delivery

import "context"

// Delivery is a long running server started by a command.
type Delivery interface {
	// Serve blocks until the server stops. A clean shutdown returns nil.
	Serve(ctx context.Context) error
}

// Package delivery holds the transports that expose the use cases.
package delivery

import "context"

// Delivery is a transport started by the application runner.
type Delivery interface {
	Serve(ctx context.Context) error
}

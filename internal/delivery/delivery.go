// Package delivery defines the transport-facing entry points of the service.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}

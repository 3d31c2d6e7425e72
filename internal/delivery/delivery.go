// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport server started from the composition
// root.
type Delivery interface {
	Serve(ctx context.Context) error
}

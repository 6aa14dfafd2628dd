package delivery

import "context"

// Delivery is a transport that serves requests until its lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}

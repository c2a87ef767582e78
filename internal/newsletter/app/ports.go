package app

import "context"

// SubscriberStore records newsletter subscriptions. Add reports whether the
// address was new.
type SubscriberStore interface {
	Add(ctx context.Context, email string) (bool, error)
}

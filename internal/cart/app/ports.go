package app

import (
	"context"

	"github.com/elventhreads/storefront/internal/cart/domain"
)

// Store persists one cart per cart id. Load returns an empty cart for ids
// that were never saved or whose stored payload is malformed; it only errors
// on storage failures.
type Store interface {
	Load(ctx context.Context, cartID string) (domain.Cart, error)
	Save(ctx context.Context, cartID string, cart domain.Cart) error
}

// Notifier receives the transient user-facing confirmations the cart emits.
type Notifier interface {
	Push(message string)
}

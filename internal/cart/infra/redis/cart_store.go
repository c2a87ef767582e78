// Package redis persists carts as JSON documents, one namespaced key per
// cart. The store is the only writer for a given key in normal operation;
// concurrent writers (another process on the same session) are
// last-write-wins with no merge.
package redis

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/elventhreads/storefront/internal/cart/domain"
)

const keyPrefix = "storefront:cart:"

type CartStore struct {
	client *redis.Client
	log    *slog.Logger
}

func NewCartStore(client *redis.Client, log *slog.Logger) *CartStore {
	return &CartStore{client: client, log: log}
}

// Load reads the cart payload. A missing key or a payload that no longer
// parses yields an empty cart, never an error; only transport failures
// surface.
func (s *CartStore) Load(ctx context.Context, cartID string) (domain.Cart, error) {
	b, err := s.client.Get(ctx, keyPrefix+cartID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, err
	}

	cart, err := domain.DecodeState(b)
	if err != nil {
		s.log.Warn("stored cart unreadable, starting empty",
			slog.String("cart_id", cartID),
			slog.Any("err", err))
		return domain.Cart{}, nil
	}
	return cart, nil
}

// Save overwrites the cart payload. Carts have no expiry; they are
// session-scoped by key, not by TTL.
func (s *CartStore) Save(ctx context.Context, cartID string, cart domain.Cart) error {
	b, err := domain.EncodeState(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+cartID, b, 0).Err()
}

// Package memory is the in-process cart store, used in tests and when no
// redis is configured. It stores the same encoded payloads the durable
// store would, so load/save round-trips exercise the real serialization.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/elventhreads/storefront/internal/cart/domain"
)

type CartStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
	log   *slog.Logger
}

func NewCartStore(log *slog.Logger) *CartStore {
	return &CartStore{
		carts: make(map[string][]byte),
		log:   log,
	}
}

func (s *CartStore) Load(ctx context.Context, cartID string) (domain.Cart, error) {
	s.mu.RLock()
	b, ok := s.carts[cartID]
	s.mu.RUnlock()

	if !ok {
		return domain.Cart{}, nil
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

func (s *CartStore) Save(ctx context.Context, cartID string, cart domain.Cart) error {
	b, err := domain.EncodeState(cart)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.carts[cartID] = b
	s.mu.Unlock()
	return nil
}

// Corrupt replaces a cart's stored payload verbatim. Test hook for exercising
// malformed-state handling.
func (s *CartStore) Corrupt(cartID string, payload []byte) {
	s.mu.Lock()
	s.carts[cartID] = payload
	s.mu.Unlock()
}

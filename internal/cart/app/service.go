package app

import (
	"context"
	"log/slog"

	"github.com/elventhreads/storefront/internal/cart/domain"
)

const addedMessage = "Product added to cart!"

// Service runs the cart operations: every mutation loads the cart, applies
// the change, persists, and returns the refreshed display model.
//
// The cart contract is no-throw: operations targeting absent line items are
// no-ops, and a failed persist is logged rather than surfaced, so the caller
// still gets the mutated state. Only a storage read failure is an error.
type Service struct {
	store    Store
	notifier Notifier
	log      *slog.Logger
}

func NewService(store Store, notifier Notifier, log *slog.Logger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		log:      log,
	}
}

// Cart returns the current display model without mutating anything.
func (s *Service) Cart(ctx context.Context, cartID string) (domain.DisplayModel, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return domain.DisplayModel{}, err
	}
	return cart.DisplayModel(), nil
}

// AddItem merges the product into the cart and pushes the confirmation
// notification. The product is accepted as-is; there is no validation layer.
func (s *Service) AddItem(ctx context.Context, cartID string, p domain.Product) (domain.DisplayModel, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return domain.DisplayModel{}, err
	}

	cart.Add(p)
	s.persist(ctx, cartID, cart)
	s.notifier.Push(addedMessage)

	return cart.DisplayModel(), nil
}

// RemoveItem drops the line item. Absent ids are a no-op, not an error.
func (s *Service) RemoveItem(ctx context.Context, cartID, productID string) (domain.DisplayModel, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return domain.DisplayModel{}, err
	}

	cart.Remove(productID)
	s.persist(ctx, cartID, cart)

	return cart.DisplayModel(), nil
}

// SetItemQuantity sets the line item's quantity, clamped to at least 1.
// Absent ids are a no-op.
func (s *Service) SetItemQuantity(ctx context.Context, cartID, productID string, quantity int) (domain.DisplayModel, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return domain.DisplayModel{}, err
	}

	cart.SetQuantity(productID, quantity)
	s.persist(ctx, cartID, cart)

	return cart.DisplayModel(), nil
}

// ClearCart empties the cart.
func (s *Service) ClearCart(ctx context.Context, cartID string) (domain.DisplayModel, error) {
	cart, err := s.store.Load(ctx, cartID)
	if err != nil {
		return domain.DisplayModel{}, err
	}

	cart.Clear()
	s.persist(ctx, cartID, cart)

	return cart.DisplayModel(), nil
}

func (s *Service) persist(ctx context.Context, cartID string, cart domain.Cart) {
	if err := s.store.Save(ctx, cartID, cart); err != nil {
		s.log.Warn("cart persist failed",
			slog.String("cart_id", cartID),
			slog.Any("err", err))
	}
}

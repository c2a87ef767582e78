package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/elventhreads/storefront/internal/cart/domain"
)

type fakeStore struct {
	carts   map[string]domain.Cart
	saveErr error
	loadErr error
	saves   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{carts: map[string]domain.Cart{}}
}

func (f *fakeStore) Load(ctx context.Context, cartID string) (domain.Cart, error) {
	if f.loadErr != nil {
		return domain.Cart{}, f.loadErr
	}
	return f.carts[cartID], nil
}

func (f *fakeStore) Save(ctx context.Context, cartID string, cart domain.Cart) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.carts[cartID] = cart
	return nil
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Push(message string) {
	f.messages = append(f.messages, message)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func scarf() domain.Product {
	return domain.Product{ID: "tops-red-scarf", Name: "Red Scarf", Price: decimal.NewFromInt(25)}
}

func TestAddItemPersistsAndNotifies(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier, discard())

	m, err := svc.AddItem(ctx, "c1", scarf())
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if m.TotalItems != 1 || m.FormattedTotal != "25.00" {
		t.Fatalf("display model = %+v", m)
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1", store.saves)
	}
	if len(notifier.messages) != 1 || notifier.messages[0] != "Product added to cart!" {
		t.Errorf("notifications = %v", notifier.messages)
	}

	m, err = svc.AddItem(ctx, "c1", scarf())
	if err != nil {
		t.Fatal(err)
	}
	if m.TotalItems != 2 || len(m.Items) != 1 || m.FormattedTotal != "50.00" {
		t.Fatalf("second add: %+v", m)
	}
}

func TestAbsentIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewService(store, &fakeNotifier{}, discard())

	if _, err := svc.AddItem(ctx, "c1", scarf()); err != nil {
		t.Fatal(err)
	}

	m, err := svc.RemoveItem(ctx, "c1", "nope")
	if err != nil {
		t.Fatalf("remove of unknown id should not error: %v", err)
	}
	if m.TotalItems != 1 || m.FormattedTotal != "25.00" {
		t.Fatalf("remove of unknown id changed the cart: %+v", m)
	}

	m, err = svc.SetItemQuantity(ctx, "c1", "nope", 5)
	if err != nil {
		t.Fatalf("quantity for unknown id should not error: %v", err)
	}
	if m.TotalItems != 1 {
		t.Fatalf("quantity for unknown id changed the cart: %+v", m)
	}
}

func TestSetItemQuantityClamps(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeStore(), &fakeNotifier{}, discard())

	if _, err := svc.AddItem(ctx, "c1", scarf()); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddItem(ctx, "c1", scarf()); err != nil {
		t.Fatal(err)
	}

	m, err := svc.SetItemQuantity(ctx, "c1", "tops-red-scarf", -3)
	if err != nil {
		t.Fatal(err)
	}
	if m.Items[0].Quantity != 1 || m.FormattedTotal != "25.00" {
		t.Fatalf("clamp failed: %+v", m)
	}
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeStore(), &fakeNotifier{}, discard())

	if _, err := svc.AddItem(ctx, "c1", scarf()); err != nil {
		t.Fatal(err)
	}

	m, err := svc.ClearCart(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if m.TotalItems != 0 || len(m.Items) != 0 || m.FormattedTotal != "0.00" {
		t.Fatalf("clear: %+v", m)
	}
}

func TestPersistFailureDoesNotFailMutation(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.saveErr = errors.New("storage down")
	svc := NewService(store, &fakeNotifier{}, discard())

	m, err := svc.AddItem(ctx, "c1", scarf())
	if err != nil {
		t.Fatalf("mutation should survive a persist failure: %v", err)
	}
	if m.TotalItems != 1 {
		t.Fatalf("display model = %+v", m)
	}
}

func TestLoadFailureSurfaces(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.loadErr = errors.New("storage down")
	svc := NewService(store, &fakeNotifier{}, discard())

	if _, err := svc.Cart(ctx, "c1"); err == nil {
		t.Fatal("expected the load error to surface")
	}
}

func TestCartsAreIndependentPerID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeStore(), &fakeNotifier{}, discard())

	if _, err := svc.AddItem(ctx, "c1", scarf()); err != nil {
		t.Fatal(err)
	}

	m, err := svc.Cart(ctx, "c2")
	if err != nil {
		t.Fatal(err)
	}
	if m.TotalItems != 0 {
		t.Fatalf("fresh cart id should be empty: %+v", m)
	}
}

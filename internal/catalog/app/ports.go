package app

import (
	"context"

	"github.com/elventhreads/storefront/internal/catalog/domain"
)

// Source provides the raw product listings the catalog is derived from, in
// rendered order.
type Source interface {
	Listings(ctx context.Context) ([]domain.Listing, error)
}

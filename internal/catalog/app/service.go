package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/elventhreads/storefront/internal/catalog/domain"
)

var ErrNotFound = errors.New("product not found")

// Service holds the catalog derived once at startup from a listing source.
// The catalog is read-only after construction.
type Service struct {
	products []domain.Product
	index    map[string]domain.Product
	log      *slog.Logger
}

// NewService reads the source once and derives the product catalog. Listings
// with missing fields degrade to defaults rather than failing; only a source
// read failure is an error. Duplicate derived ids are kept (the first
// occurrence wins on lookup) and logged.
func NewService(ctx context.Context, src Source, log *slog.Logger) (*Service, error) {
	listings, err := src.Listings(ctx)
	if err != nil {
		return nil, err
	}

	s := &Service{
		products: make([]domain.Product, 0, len(listings)),
		index:    make(map[string]domain.Product, len(listings)),
		log:      log,
	}

	for i, l := range listings {
		p := domain.FromListing(l, i+1)
		s.products = append(s.products, p)

		if _, dup := s.index[p.ID]; dup {
			log.Warn("duplicate product id, first listing wins",
				slog.String("id", p.ID),
				slog.String("name", p.Name))
			continue
		}
		s.index[p.ID] = p
	}

	log.Info("catalog built", slog.Int("products", len(s.products)))
	return s, nil
}

// Product resolves a product by its derived id. When two listings derived the
// same id, the first one in listing order is returned.
func (s *Service) Product(id string) (domain.Product, error) {
	p, ok := s.index[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

// Products returns the catalog in listing order, optionally filtered by
// category. An empty category or "all" returns everything.
func (s *Service) Products(category string) []domain.Product {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" || category == "all" {
		return append([]domain.Product(nil), s.products...)
	}

	var out []domain.Product
	for _, p := range s.products {
		if strings.ToLower(p.Category) == category {
			out = append(out, p)
		}
	}
	return out
}

// Package static is the built-in listing set, used when no rendered listing
// page is configured. It mirrors the storefront's collection page.
package static

import (
	"context"

	"github.com/elventhreads/storefront/internal/catalog/domain"
)

var listings = []domain.Listing{
	{Name: "Midnight Gown", Category: "dresses", PriceText: "$129.00", Image: "images/midnight-gown.jpg"},
	{Name: "Willow Dress", Category: "dresses", PriceText: "$98.00", Image: "images/willow-dress.jpg"},
	{Name: "Red Scarf", Category: "tops", PriceText: "$25.00", Image: "images/red-scarf.jpg"},
	{Name: "Linen Shirt", Category: "tops", PriceText: "$54.00", Image: "images/linen-shirt.jpg"},
	{Name: "Moss Cardigan", Category: "tops", PriceText: "$72.00", Image: "images/moss-cardigan.jpg"},
	{Name: "Rain Cloak", Category: "outerwear", PriceText: "$149.00", Image: "images/rain-cloak.jpg"},
	{Name: "Woven Belt", Category: "accessories", PriceText: "$32.00", Image: "images/woven-belt.jpg"},
	{Name: "Silver Brooch", Category: "accessories", PriceText: "$45.00", Image: "images/silver-brooch.jpg"},
}

type Source struct{}

func NewSource() *Source {
	return &Source{}
}

func (s *Source) Listings(ctx context.Context) ([]domain.Listing, error) {
	return append([]domain.Listing(nil), listings...), nil
}

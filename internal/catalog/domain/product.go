package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultDescription is the static descriptive copy shared by every product
// in this catalog.
const DefaultDescription = "Beautifully crafted piece from Elven Threads."

var (
	DefaultSizes  = []string{"XS", "S", "M", "L", "XL"}
	DefaultColors = []string{"Black", "Navy", "Beige"}
)

// Product is a catalog record. Products are immutable once the catalog is
// built; consumers that need to mutate (the cart) take copies.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
}

// Listing is one raw product record as rendered by a listing source, before
// any derivation. Fields may be empty; derivation substitutes defaults.
type Listing struct {
	Name      string
	Category  string
	PriceText string
	Image     string
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveID builds the stable product identifier from category and name.
// Empty categories fall back to "item". The result is lowercase with every
// run of characters outside [a-z0-9] collapsed to a single "-".
func DeriveID(category, name string) string {
	if category == "" {
		category = "item"
	}
	raw := strings.ToLower(category) + "-" + strings.ToLower(name)
	return nonSlug.ReplaceAllString(raw, "-")
}

var nonPrice = regexp.MustCompile(`[^0-9.]`)

// ParsePrice reads a currency-formatted display string ("$129.00",
// "$1,234.50") into a decimal. Empty or unparsable input yields zero.
func ParsePrice(text string) decimal.Decimal {
	cleaned := nonPrice.ReplaceAllString(text, "")
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FromListing derives a Product from a raw listing. ordinal is the 1-based
// position of the listing and names the product when the listing has no name
// text. Missing fields degrade to defaults; there is no error path.
func FromListing(l Listing, ordinal int) Product {
	name := strings.TrimSpace(l.Name)
	if name == "" {
		name = fmt.Sprintf("Product %d", ordinal)
	}

	return Product{
		ID:          DeriveID(l.Category, name),
		Name:        name,
		Category:    l.Category,
		Price:       ParsePrice(l.PriceText),
		Image:       l.Image,
		Description: DefaultDescription,
		Sizes:       append([]string(nil), DefaultSizes...),
		Colors:      append([]string(nil), DefaultColors...),
	}
}

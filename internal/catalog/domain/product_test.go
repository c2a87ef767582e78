package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDeriveID(t *testing.T) {
	cases := []struct {
		category, name, want string
	}{
		{"Dresses", "Midnight Gown", "dresses-midnight-gown"},
		{"tops", "Red Scarf", "tops-red-scarf"},
		{"", "Linen Shirt", "item-linen-shirt"},
		{"tops", "Red  &  Gold Scarf", "tops-red-gold-scarf"},
		{"accessories", "Wrap (Silk)", "accessories-wrap-silk-"},
	}

	for _, c := range cases {
		got := DeriveID(c.category, c.name)
		if got != c.want {
			t.Errorf("DeriveID(%q, %q) = %q, want %q", c.category, c.name, got, c.want)
		}
		// Deterministic: same inputs, same id.
		if again := DeriveID(c.category, c.name); again != got {
			t.Errorf("DeriveID(%q, %q) not deterministic: %q vs %q", c.category, c.name, got, again)
		}
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"$129.00", "129"},
		{"$1,234.50", "1234.5"},
		{"25", "25"},
		{"", "0"},
		{"call us", "0"},
		{"$..", "0"},
	}

	for _, c := range cases {
		got := ParsePrice(c.in)
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("ParsePrice(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestFromListing(t *testing.T) {
	t.Run("full listing", func(t *testing.T) {
		p := FromListing(Listing{
			Name:      "  Midnight Gown  ",
			Category:  "dresses",
			PriceText: "$129.00",
			Image:     "images/midnight-gown.jpg",
		}, 1)

		if p.ID != "dresses-midnight-gown" {
			t.Errorf("id = %q", p.ID)
		}
		if p.Name != "Midnight Gown" {
			t.Errorf("name = %q, want trimmed", p.Name)
		}
		if !p.Price.Equal(decimal.NewFromInt(129)) {
			t.Errorf("price = %s", p.Price)
		}
		if p.Description != DefaultDescription {
			t.Errorf("description = %q", p.Description)
		}
		if len(p.Sizes) != len(DefaultSizes) || len(p.Colors) != len(DefaultColors) {
			t.Errorf("defaults not attached: sizes=%v colors=%v", p.Sizes, p.Colors)
		}
	})

	t.Run("empty listing degrades to defaults", func(t *testing.T) {
		p := FromListing(Listing{}, 3)

		if p.Name != "Product 3" {
			t.Errorf("name = %q, want positional fallback", p.Name)
		}
		if p.ID != "item-product-3" {
			t.Errorf("id = %q", p.ID)
		}
		if !p.Price.IsZero() {
			t.Errorf("price = %s, want 0", p.Price)
		}
		if p.Category != "" || p.Image != "" {
			t.Errorf("category/image = %q/%q, want empty", p.Category, p.Image)
		}
	})

	t.Run("default slices are independent copies", func(t *testing.T) {
		p := FromListing(Listing{Name: "Scarf"}, 1)
		p.Sizes[0] = "XXL"
		if DefaultSizes[0] != "XS" {
			t.Fatal("mutating a product's sizes changed the shared defaults")
		}
	})
}

package domain

import "github.com/shopspring/decimal"

// Product carries the catalog fields a line item is created from. The cart
// keeps its own copies so quantity changes never reach back into the catalog.
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

// LineItem is one cart entry: product fields plus a quantity of at least 1.
type LineItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Sizes       []string        `json:"sizes"`
	Colors      []string        `json:"colors"`
	Quantity    int             `json:"quantity"`
}

// Cart is the ordered line-item list and its derived total. Items are unique
// by id; Total always equals the sum of price times quantity after a
// mutation returns.
type Cart struct {
	Items []LineItem
	Total decimal.Decimal
}

// Add merges the product into the cart: an existing line item with the same
// id gains one unit, otherwise a new line item with quantity 1 is appended.
func (c *Cart) Add(p Product) {
	for i := range c.Items {
		if c.Items[i].ID == p.ID {
			c.Items[i].Quantity++
			c.RecomputeTotal()
			return
		}
	}

	c.Items = append(c.Items, LineItem{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
		Sizes:       append([]string(nil), p.Sizes...),
		Colors:      append([]string(nil), p.Colors...),
		Quantity:    1,
	})
	c.RecomputeTotal()
}

// Remove drops the line item with the given id. Absent ids are a no-op.
func (c *Cart) Remove(id string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.Items = kept
	c.RecomputeTotal()
}

// SetQuantity sets the line item's quantity, clamping to a minimum of 1.
// There is no remove-via-zero shortcut; absent ids are a no-op.
func (c *Cart) SetQuantity(id string, quantity int) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = max(1, quantity)
			c.RecomputeTotal()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
	c.Total = decimal.Zero
}

// RecomputeTotal rederives Total from the line items.
func (c *Cart) RecomputeTotal() {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	c.Total = total
}

// DisplayModel is the derived read-only summary the presentation layer
// renders after each mutation.
type DisplayModel struct {
	TotalItems     int        `json:"total_items"`
	Items          []LineItem `json:"items"`
	FormattedTotal string     `json:"formatted_total"`
}

// DisplayModel computes the rendering summary: total unit count, the ordered
// line items, and the total formatted to two decimal places. No side effects.
func (c *Cart) DisplayModel() DisplayModel {
	count := 0
	for _, it := range c.Items {
		count += it.Quantity
	}
	return DisplayModel{
		TotalItems:     count,
		Items:          append([]LineItem{}, c.Items...),
		FormattedTotal: c.Total.StringFixed(2),
	}
}

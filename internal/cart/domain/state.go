package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	// Persisted payloads and API responses carry numeric prices and totals,
	// not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// persistedState is the durable cart record: the line items plus the total
// at the time of the write. The total is written for compatibility but is
// rederived from the items on load rather than trusted, so a corrupted or
// stale stored total cannot desynchronize the cart.
type persistedState struct {
	Items []LineItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// EncodeState serializes the cart for durable storage.
func EncodeState(c Cart) ([]byte, error) {
	return json.Marshal(persistedState{Items: c.Items, Total: c.Total})
}

// DecodeState rebuilds a cart from a stored payload. A missing items field
// decodes to an empty cart; malformed JSON is an error the caller is
// expected to degrade to an empty cart.
func DecodeState(b []byte) (Cart, error) {
	var state persistedState
	if err := json.Unmarshal(b, &state); err != nil {
		return Cart{}, err
	}

	c := Cart{Items: state.Items}
	c.RecomputeTotal()
	return c, nil
}

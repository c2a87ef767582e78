package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestStateRoundTrip(t *testing.T) {
	var c Cart
	c.Add(scarf())
	c.Add(scarf())
	c.Add(gown())

	b, err := EncodeState(c)
	if err != nil {
		t.Fatalf("EncodeState: %v", err)
	}

	got, err := DecodeState(b)
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}

	if len(got.Items) != len(c.Items) {
		t.Fatalf("items = %d, want %d", len(got.Items), len(c.Items))
	}
	for i := range c.Items {
		want, have := c.Items[i], got.Items[i]
		if have.ID != want.ID || have.Name != want.Name || have.Quantity != want.Quantity ||
			!have.Price.Equal(want.Price) || have.Category != want.Category {
			t.Errorf("item %d: got %+v, want %+v", i, have, want)
		}
	}
	if !got.Total.Equal(c.Total) {
		t.Errorf("total = %s, want %s", got.Total, c.Total)
	}
}

func TestEncodeStateShape(t *testing.T) {
	var c Cart
	c.Add(scarf())

	b, err := EncodeState(c)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"items", "total"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("payload missing %q: %s", key, b)
		}
	}
	// Prices serialize as numbers, not quoted strings.
	if strings.Contains(string(raw["total"]), `"`) {
		t.Errorf("total serialized as string: %s", raw["total"])
	}
}

// A tampered stored total is discarded and rederived from the items. This
// deliberately diverges from the original storefront, which trusted the
// stored total verbatim.
func TestDecodeStateRecomputesTotal(t *testing.T) {
	payload := `{"items":[{"id":"tops-red-scarf","name":"Red Scarf","price":25,"quantity":2}],"total":9999}`

	c, err := DecodeState([]byte(payload))
	if err != nil {
		t.Fatalf("DecodeState: %v", err)
	}
	if c.Total.String() != "50" {
		t.Fatalf("total = %s, want recomputed 50", c.Total)
	}
}

func TestDecodeStateDefaults(t *testing.T) {
	t.Run("missing items", func(t *testing.T) {
		c, err := DecodeState([]byte(`{"total":12}`))
		if err != nil {
			t.Fatalf("DecodeState: %v", err)
		}
		if len(c.Items) != 0 || !c.Total.IsZero() {
			t.Fatalf("got %+v total=%s, want empty", c.Items, c.Total)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		if _, err := DecodeState([]byte(`{not json`)); err == nil {
			t.Fatal("expected an error for malformed payload")
		}
	})
}

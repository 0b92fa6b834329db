package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNullableDecimalUnmarshal(t *testing.T) {
	t.Parallel()

	type payload struct {
		Price NullableDecimal `json:"price"`
	}

	t.Run("absent field stays invalid", func(t *testing.T) {
		t.Parallel()

		var p payload
		if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if p.Price.Valid {
			t.Fatalf("expected absent field to stay invalid")
		}
	})

	t.Run("explicit null is valid with nil value", func(t *testing.T) {
		t.Parallel()

		var p payload
		if err := json.Unmarshal([]byte(`{"price":null}`), &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !p.Price.Valid || p.Price.Value != nil {
			t.Fatalf("expected valid null, got %+v", p.Price)
		}
	})

	t.Run("numeric value parses", func(t *testing.T) {
		t.Parallel()

		var p payload
		if err := json.Unmarshal([]byte(`{"price":"19.90"}`), &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !p.Price.Valid || p.Price.Value == nil {
			t.Fatalf("expected present value, got %+v", p.Price)
		}
		if !p.Price.Value.Equal(decimal.RequireFromString("19.90")) {
			t.Fatalf("unexpected value %s", p.Price.Value)
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		t.Parallel()

		var p payload
		if err := json.Unmarshal([]byte(`{"price":{"a":1}}`), &p); err == nil {
			t.Fatalf("expected error for non-numeric value")
		}
	})
}

package types

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// NullableDecimal tracks whether a decimal field was explicitly present in
// JSON, so updates can tell "clear the value" apart from "leave it alone".
type NullableDecimal struct {
	Valid bool
	Value *decimal.Decimal
}

// NewNullableDecimal returns a present NullableDecimal holding v.
func NewNullableDecimal(v decimal.Decimal) NullableDecimal {
	return NullableDecimal{Valid: true, Value: &v}
}

// NullDecimal returns a present NullableDecimal holding null.
func NullDecimal() NullableDecimal {
	return NullableDecimal{Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullableDecimal) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	if bytes.Equal(trimmed, []byte("null")) {
		n.Valid = true
		n.Value = nil
		return nil
	}

	var parsed decimal.Decimal
	if err := json.Unmarshal(trimmed, &parsed); err != nil {
		return err
	}
	n.Valid = true
	n.Value = &parsed
	return nil
}

// Clone returns a copy of the NullableDecimal.
func (n NullableDecimal) Clone() NullableDecimal {
	if n.Value == nil {
		return NullableDecimal{Valid: n.Valid}
	}
	copy := *n.Value
	return NullableDecimal{Valid: n.Valid, Value: &copy}
}

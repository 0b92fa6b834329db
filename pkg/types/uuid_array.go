package types

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UUIDArray represents a Postgres uuid[] column.
type UUIDArray []uuid.UUID

// Value implements the driver.Valuer interface so the slice can be inserted.
func (a UUIDArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	raw := make([]string, 0, len(a))
	for _, id := range a {
		raw = append(raw, id.String())
	}
	return pq.Array(raw).Value()
}

// Scan implements sql.Scanner for a Postgres uuid[] column.
func (a *UUIDArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var raw pq.StringArray
	if err := raw.Scan(value); err != nil {
		return err
	}

	out := make(UUIDArray, 0, len(raw))
	for _, entry := range raw {
		id, err := uuid.Parse(entry)
		if err != nil {
			return fmt.Errorf("parsing uuid array element %q: %w", entry, err)
		}
		out = append(out, id)
	}
	*a = out
	return nil
}

// Contains reports whether the array holds the given id.
func (a UUIDArray) Contains(id uuid.UUID) bool {
	for _, candidate := range a {
		if candidate == id {
			return true
		}
	}
	return false
}

package pagination

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestLimitsNormalize(t *testing.T) {
	t.Parallel()

	limits := Limits{Default: 24, Max: 100}
	cases := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero falls to default", 0, 24},
		{"negative falls to default", -5, 24},
		{"in range passes through", 48, 48},
		{"above max is capped", 500, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := limits.Normalize(tc.limit); got != tc.want {
				t.Fatalf("Normalize(%d) = %d, want %d", tc.limit, got, tc.want)
			}
		})
	}

	if got := limits.WithBuffer(24); got != 25 {
		t.Fatalf("WithBuffer(24) = %d, want 25", got)
	}
}

func TestCursorRoundtrip(t *testing.T) {
	t.Parallel()

	want := Cursor{
		CreatedAt: time.Date(2026, 2, 14, 9, 30, 0, 123456789, time.UTC),
		ID:        uuid.New(),
	}
	got, err := ParseCursor(EncodeCursor(want))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got == nil || !got.CreatedAt.Equal(want.CreatedAt) || got.ID != want.ID {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}

func TestParseCursorEdgeCases(t *testing.T) {
	t.Parallel()

	if cursor, err := ParseCursor("  "); err != nil || cursor != nil {
		t.Fatalf("expected nil cursor for blank input, got %v, %v", cursor, err)
	}
	if _, err := ParseCursor("not-base64!!"); err == nil {
		t.Fatalf("expected error for invalid encoding")
	}
	if _, err := ParseCursor("aGVsbG8="); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}

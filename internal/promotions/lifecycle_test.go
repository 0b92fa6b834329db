package promotions

import (
	"testing"
	"time"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/enums"
)

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name     string
		now      time.Time
		isActive bool
		want     enums.PromotionStatus
	}{
		{name: "before window", now: start.Add(-time.Hour), isActive: true, want: enums.PromotionStatusScheduled},
		{name: "before window inactive", now: start.Add(-time.Hour), isActive: false, want: enums.PromotionStatusScheduled},
		{name: "inside window", now: start.Add(24 * time.Hour), isActive: true, want: enums.PromotionStatusActive},
		{name: "inside window inactive", now: start.Add(24 * time.Hour), isActive: false, want: enums.PromotionStatusDraft},
		{name: "exactly at start", now: start, isActive: true, want: enums.PromotionStatusActive},
		{name: "exactly at end", now: end, isActive: true, want: enums.PromotionStatusActive},
		{name: "after window", now: end.Add(time.Second), isActive: true, want: enums.PromotionStatusExpired},
		{name: "after window inactive", now: end.Add(time.Second), isActive: false, want: enums.PromotionStatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStatus(tt.now, start, end, tt.isActive); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

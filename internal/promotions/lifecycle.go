package promotions

import (
	"time"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/enums"
)

// ClassifyStatus derives a promotion's lifecycle status from its window and
// active flag. The caller supplies now so classification stays deterministic;
// both window boundaries count as inside the window.
func ClassifyStatus(now, start, end time.Time, isActive bool) enums.PromotionStatus {
	if now.Before(start) {
		return enums.PromotionStatusScheduled
	}
	if now.After(end) {
		return enums.PromotionStatusExpired
	}
	if isActive {
		return enums.PromotionStatusActive
	}
	return enums.PromotionStatusDraft
}

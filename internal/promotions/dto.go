package promotions

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/db/models"
)

// PromotionDTO represents the promotion payload returned to admin clients.
type PromotionDTO struct {
	ID             uuid.UUID        `json:"id"`
	StoreID        uuid.UUID        `json:"store_id"`
	Name           string           `json:"name"`
	Scope          string           `json:"scope"`
	ProductIDs     []uuid.UUID      `json:"product_ids,omitempty"`
	CategoryIDs    []uuid.UUID      `json:"category_ids,omitempty"`
	DiscountType   string           `json:"discount_type"`
	DiscountValue  decimal.Decimal  `json:"discount_value"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price,omitempty"`
	StartDate      time.Time        `json:"start_date"`
	EndDate        time.Time        `json:"end_date"`
	Priority       int              `json:"priority"`
	IsActive       bool             `json:"is_active"`
	Status         string           `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

func toPromotionDTO(promo *models.Promotion) *PromotionDTO {
	if promo == nil {
		return nil
	}
	return &PromotionDTO{
		ID:             promo.ID,
		StoreID:        promo.StoreID,
		Name:           promo.Name,
		Scope:          promo.Scope.String(),
		ProductIDs:     promo.ProductIDs,
		CategoryIDs:    promo.CategoryIDs,
		DiscountType:   promo.DiscountType.String(),
		DiscountValue:  promo.DiscountValue,
		CompareAtPrice: promo.CompareAtPrice,
		StartDate:      promo.StartDate,
		EndDate:        promo.EndDate,
		Priority:       promo.Priority,
		IsActive:       promo.IsActive,
		Status:         promo.Status.String(),
		CreatedAt:      promo.CreatedAt,
		UpdatedAt:      promo.UpdatedAt,
	}
}

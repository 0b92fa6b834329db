package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/internal/promotions"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/db/models"
)

// AppliedPromotionDTO is the storefront view of the one promotion that won
// resolution for a product.
type AppliedPromotionDTO struct {
	PromotionID      uuid.UUID       `json:"promotion_id"`
	Name             string          `json:"name"`
	Scope            string          `json:"scope"`
	PromotionalPrice decimal.Decimal `json:"promotional_price"`
	OriginalPrice    decimal.Decimal `json:"original_price"`
	Savings          decimal.Decimal `json:"savings"`
	ComparisonMode   bool            `json:"comparison_mode"`
}

// BreadcrumbDTO is one category step shown above a product.
type BreadcrumbDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

// ProductDTO is a storefront product with its resolved pricing attached.
// Promotion is nil when no promotion applies; the storefront then shows the
// plain price.
type ProductDTO struct {
	ID             uuid.UUID            `json:"id"`
	StoreID        uuid.UUID            `json:"store_id"`
	Name           string               `json:"name"`
	Description    *string              `json:"description,omitempty"`
	ImageURL       *string              `json:"image_url,omitempty"`
	Price          decimal.Decimal      `json:"price"`
	CompareAtPrice *decimal.Decimal     `json:"compare_at_price,omitempty"`
	Breadcrumbs    []BreadcrumbDTO      `json:"breadcrumbs,omitempty"`
	Promotion      *AppliedPromotionDTO `json:"promotion,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

// ProductListDTO is one storefront page. NextCursor is nil on the last page.
type ProductListDTO struct {
	Items      []ProductDTO `json:"items"`
	NextCursor *string      `json:"next_cursor,omitempty"`
}

func toAppliedPromotionDTO(resolved *promotions.ResolvedPromotion) *AppliedPromotionDTO {
	if resolved == nil {
		return nil
	}
	return &AppliedPromotionDTO{
		PromotionID:      resolved.Promotion.ID,
		Name:             resolved.Promotion.Name,
		Scope:            resolved.Scope.String(),
		PromotionalPrice: resolved.PromotionalPrice,
		OriginalPrice:    resolved.OriginalPrice,
		Savings:          resolved.Savings,
		ComparisonMode:   resolved.ComparisonMode,
	}
}

func toProductDTO(product models.Product, breadcrumbs []BreadcrumbDTO, resolved *promotions.ResolvedPromotion) ProductDTO {
	return ProductDTO{
		ID:             product.ID,
		StoreID:        product.StoreID,
		Name:           product.Name,
		Description:    product.Description,
		ImageURL:       product.ImageURL,
		Price:          product.Price,
		CompareAtPrice: product.CompareAtPrice,
		Breadcrumbs:    breadcrumbs,
		Promotion:      toAppliedPromotionDTO(resolved),
		CreatedAt:      product.CreatedAt,
	}
}

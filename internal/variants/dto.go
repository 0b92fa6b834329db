package variants

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/db/models"
)

// VariantValueDTO is a single selectable option inside a variant.
type VariantValueDTO struct {
	ID        uuid.UUID `json:"id"`
	Value     string    `json:"value"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// VariantDTO is a variant axis (e.g. "Size") with its ordered values.
type VariantDTO struct {
	ID        uuid.UUID         `json:"id"`
	ProductID uuid.UUID         `json:"product_id"`
	Name      string            `json:"name"`
	Position  int               `json:"position"`
	Values    []VariantValueDTO `json:"values"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// CombinationDTO is one sellable combination of variant values with its
// resolved effective price.
type CombinationDTO struct {
	ID             uuid.UUID        `json:"id"`
	ProductID      uuid.UUID        `json:"product_id"`
	ValueIDs       []uuid.UUID      `json:"value_ids"`
	Price          *decimal.Decimal `json:"price"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price"`
	Cost           *decimal.Decimal `json:"cost"`
	EffectivePrice decimal.Decimal  `json:"effective_price"`
	PriceSource    string           `json:"price_source"`
	StockQuantity  int              `json:"stock_quantity"`
	IsActive       bool             `json:"is_active"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// GroupPriceDTO is a bulk price attached to a single variant value.
type GroupPriceDTO struct {
	ID             uuid.UUID       `json:"id"`
	ProductID      uuid.UUID       `json:"product_id"`
	VariantValueID uuid.UUID       `json:"variant_value_id"`
	Price          decimal.Decimal `json:"price"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// GenerateResult reports how a combination generation run went.
type GenerateResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// CascadeResult reports which combinations a group-price cascade touched.
type CascadeResult struct {
	GroupPrice GroupPriceDTO `json:"group_price"`
	UpdatedIDs []uuid.UUID   `json:"updated_ids"`
	SkippedIDs []uuid.UUID   `json:"skipped_ids"`
	FailedIDs  []uuid.UUID   `json:"failed_ids"`
}

func toVariantDTO(v models.Variant) VariantDTO {
	values := make([]VariantValueDTO, 0, len(v.Values))
	for _, val := range v.Values {
		values = append(values, VariantValueDTO{
			ID:        val.ID,
			Value:     val.Value,
			Position:  val.Position,
			CreatedAt: val.CreatedAt,
		})
	}

	return VariantDTO{
		ID:        v.ID,
		ProductID: v.ProductID,
		Name:      v.Name,
		Position:  v.Position,
		Values:    values,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func toCombinationDTO(c models.VariantCombination, resolved ResolvedCombination) CombinationDTO {
	return CombinationDTO{
		ID:             c.ID,
		ProductID:      c.ProductID,
		ValueIDs:       c.ValueIDs,
		Price:          c.Price,
		CompareAtPrice: c.CompareAtPrice,
		Cost:           c.Cost,
		EffectivePrice: resolved.Price,
		PriceSource:    string(resolved.PriceSource),
		StockQuantity:  c.StockQuantity,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toGroupPriceDTO(g models.VariantGroupPrice) GroupPriceDTO {
	return GroupPriceDTO{
		ID:             g.ID,
		ProductID:      g.ProductID,
		VariantValueID: g.VariantValueID,
		Price:          g.Price,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

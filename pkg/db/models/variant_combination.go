package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/types"
)

// VariantCombination is one concrete purchasable variant of a product
// (e.g. Size M / Red). ValueKey is the canonical order-independent identity
// of the value set; no two combinations of a product may share it.
type VariantCombination struct {
	ID             uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID      uuid.UUID        `gorm:"column:product_id;type:uuid;not null;uniqueIndex:uq_combination_product_key"`
	ValueIDs       types.UUIDArray  `gorm:"column:value_ids;type:uuid[];not null"`
	ValueKey       string           `gorm:"column:value_key;not null;uniqueIndex:uq_combination_product_key"`
	Price          *decimal.Decimal `gorm:"column:price;type:numeric(12,2)"`
	CompareAtPrice *decimal.Decimal `gorm:"column:compare_at_price;type:numeric(12,2)"`
	Cost           *decimal.Decimal `gorm:"column:cost;type:numeric(12,2)"`
	StockQuantity  int              `gorm:"column:stock_quantity;not null;default:0"`
	IsActive       bool             `gorm:"column:is_active;not null;default:true"`
	CreatedAt      time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// VariantGroupPrice is a bulk price applied to every combination sharing one
// variant value, unless the combination carries its own price.
type VariantGroupPrice struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID      uuid.UUID       `gorm:"column:product_id;type:uuid;not null;uniqueIndex:uq_group_price_product_value"`
	VariantValueID uuid.UUID       `gorm:"column:variant_value_id;type:uuid;not null;uniqueIndex:uq_group_price_product_value"`
	Price          decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

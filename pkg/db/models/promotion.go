package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/enums"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/types"
)

// Promotion defines a discount campaign. The target arrays are populated
// according to the scope: product scope uses ProductIDs, category scope uses
// CategoryIDs, and global scope carries neither.
type Promotion struct {
	ID             uuid.UUID             `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreID        uuid.UUID             `gorm:"column:store_id;type:uuid;not null;index"`
	Name           string                `gorm:"column:name;not null"`
	Scope          enums.PromotionScope  `gorm:"column:scope;type:promotion_scope;not null"`
	ProductIDs     types.UUIDArray       `gorm:"column:product_ids;type:uuid[]"`
	CategoryIDs    types.UUIDArray       `gorm:"column:category_ids;type:uuid[]"`
	DiscountType   enums.DiscountType    `gorm:"column:discount_type;type:discount_type;not null"`
	DiscountValue  decimal.Decimal       `gorm:"column:discount_value;type:numeric(12,2);not null"`
	CompareAtPrice *decimal.Decimal      `gorm:"column:compare_at_price;type:numeric(12,2)"`
	StartDate      time.Time             `gorm:"column:start_date;not null"`
	EndDate        time.Time             `gorm:"column:end_date;not null"`
	Priority       int                   `gorm:"column:priority;not null;default:0"`
	IsActive       bool                  `gorm:"column:is_active;not null;default:true"`
	Status         enums.PromotionStatus `gorm:"column:status;type:promotion_status;not null;default:'draft'"`
	CreatedAt      time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

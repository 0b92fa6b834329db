package variants

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/db/models"
)

// VariantRepository defines persistence operations for variants,
// combinations and group prices.
type VariantRepository interface {
	CreateVariant(ctx context.Context, variant *models.Variant) (*models.Variant, error)
	DeleteVariant(ctx context.Context, id uuid.UUID) error
	FindVariantByID(ctx context.Context, id uuid.UUID) (*models.Variant, error)
	ListVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]models.Variant, error)
	CreateCombinations(ctx context.Context, combos []models.VariantCombination) ([]models.VariantCombination, error)
	FindCombinationByID(ctx context.Context, id uuid.UUID) (*models.VariantCombination, error)
	ListCombinationsByProduct(ctx context.Context, productID uuid.UUID) ([]models.VariantCombination, error)
	UpdateCombination(ctx context.Context, combo *models.VariantCombination) (*models.VariantCombination, error)
	SetCombinationPriceIfUnset(ctx context.Context, id uuid.UUID, price decimal.Decimal) (bool, error)
	UpsertGroupPrice(ctx context.Context, groupPrice *models.VariantGroupPrice) (*models.VariantGroupPrice, error)
	ListGroupPricesByProduct(ctx context.Context, productID uuid.UUID) ([]models.VariantGroupPrice, error)
}

// Repository is the GORM-backed variant store.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// CreateVariant inserts the variant together with its values.
func (r *Repository) CreateVariant(ctx context.Context, variant *models.Variant) (*models.Variant, error) {
	if err := r.db.WithContext(ctx).Create(variant).Error; err != nil {
		return nil, err
	}
	return variant, nil
}

// DeleteVariant removes the variant row. Values follow via the FK cascade.
func (r *Repository) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Variant{}, "id = ?", id).Error
}

// FindVariantByID loads one variant with its values in creation order.
func (r *Repository) FindVariantByID(ctx context.Context, id uuid.UUID) (*models.Variant, error) {
	var variant models.Variant
	if err := r.db.WithContext(ctx).
		Preload("Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&variant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &variant, nil
}

// ListVariantsByProduct returns the product's variants in creation order,
// each with its values preloaded in creation order. That ordering carries the
// precedence the group price cascade depends on.
func (r *Repository) ListVariantsByProduct(ctx context.Context, productID uuid.UUID) ([]models.Variant, error) {
	var variants []models.Variant
	if err := r.db.WithContext(ctx).
		Preload("Values", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("product_id = ?", productID).
		Order("created_at ASC, id ASC").
		Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

// CreateCombinations inserts the batch in one statement.
func (r *Repository) CreateCombinations(ctx context.Context, combos []models.VariantCombination) ([]models.VariantCombination, error) {
	if len(combos) == 0 {
		return combos, nil
	}
	if err := r.db.WithContext(ctx).Create(&combos).Error; err != nil {
		return nil, err
	}
	return combos, nil
}

// FindCombinationByID loads one combination.
func (r *Repository) FindCombinationByID(ctx context.Context, id uuid.UUID) (*models.VariantCombination, error) {
	var combo models.VariantCombination
	if err := r.db.WithContext(ctx).First(&combo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &combo, nil
}

// ListCombinationsByProduct returns the product's combinations in creation
// order.
func (r *Repository) ListCombinationsByProduct(ctx context.Context, productID uuid.UUID) ([]models.VariantCombination, error) {
	var combos []models.VariantCombination
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at ASC, id ASC").
		Find(&combos).Error; err != nil {
		return nil, err
	}
	return combos, nil
}

// UpdateCombination saves all combination fields.
func (r *Repository) UpdateCombination(ctx context.Context, combo *models.VariantCombination) (*models.VariantCombination, error) {
	if err := r.db.WithContext(ctx).Save(combo).Error; err != nil {
		return nil, err
	}
	return combo, nil
}

// SetCombinationPriceIfUnset writes the price only when the combination does
// not already carry its own. The guard lives in the WHERE clause so the
// cascade never clobbers an individual price, even under concurrent edits.
// Returns whether a row was written.
func (r *Repository) SetCombinationPriceIfUnset(ctx context.Context, id uuid.UUID, price decimal.Decimal) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.VariantCombination{}).
		Where("id = ? AND price IS NULL", id).
		Update("price", price)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpsertGroupPrice inserts the group price or updates the stored price when
// the (product, value) pair already has one.
func (r *Repository) UpsertGroupPrice(ctx context.Context, groupPrice *models.VariantGroupPrice) (*models.VariantGroupPrice, error) {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "variant_value_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
		}).
		Create(groupPrice).Error; err != nil {
		return nil, err
	}
	return groupPrice, nil
}

// ListGroupPricesByProduct returns the product's group prices.
func (r *Repository) ListGroupPricesByProduct(ctx context.Context, productID uuid.UUID) ([]models.VariantGroupPrice, error) {
	var prices []models.VariantGroupPrice
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

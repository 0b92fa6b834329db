package promotions

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/db/models"
)

// PromotionRepository defines persistence operations for promotions.
type PromotionRepository interface {
	Create(ctx context.Context, promo *models.Promotion) (*models.Promotion, error)
	Update(ctx context.Context, promo *models.Promotion) (*models.Promotion, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]models.Promotion, error)
	ListCurrentByStore(ctx context.Context, storeID uuid.UUID, now time.Time) ([]models.Promotion, error)
}

// Repository is the GORM-backed promotion store.
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

// Create inserts the promotion.
func (r *Repository) Create(ctx context.Context, promo *models.Promotion) (*models.Promotion, error) {
	if err := r.db.WithContext(ctx).Create(promo).Error; err != nil {
		return nil, err
	}
	return promo, nil
}

// Update saves all promotion fields.
func (r *Repository) Update(ctx context.Context, promo *models.Promotion) (*models.Promotion, error) {
	if err := r.db.WithContext(ctx).Save(promo).Error; err != nil {
		return nil, err
	}
	return promo, nil
}

// Delete removes the promotion row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Promotion{}, "id = ?", id).Error
}

// FindByID loads one promotion.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	var promo models.Promotion
	if err := r.db.WithContext(ctx).First(&promo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}

// ListByStore returns every promotion configured for the store, newest first.
func (r *Repository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]models.Promotion, error) {
	var promos []models.Promotion
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at DESC").
		Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

// ListCurrentByStore returns the store's promotions whose window contains now
// and whose flag is on. The resolver still re-classifies each candidate; this
// query only narrows the fetch for batch resolution.
func (r *Repository) ListCurrentByStore(ctx context.Context, storeID uuid.UUID, now time.Time) ([]models.Promotion, error) {
	var promos []models.Promotion
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND is_active = ? AND start_date <= ? AND end_date >= ?", storeID, true, now, now).
		Order("created_at DESC").
		Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

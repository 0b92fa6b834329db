package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/db/models"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/pagination"
)

// CatalogRepository defines the storefront read queries.
type CatalogRepository interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProductsByStore(ctx context.Context, storeID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.Product, error)
	ListCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Category, error)
}

// Repository is the GORM-backed catalog reader.
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

// FindProductByID loads one product.
func (r *Repository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProductsByStore returns the store's active products newest first,
// keyset-paginated on (created_at, id).
func (r *Repository) ListProductsByStore(ctx context.Context, storeID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.Product, error) {
	query := r.db.WithContext(ctx).
		Where("store_id = ? AND is_active = ?", storeID, true)
	if cursor != nil {
		query = query.Where(
			"(created_at < ?) OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var products []models.Product
	if err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListCategoriesByIDs loads the categories for a batch of ids in one query.
func (r *Repository) ListCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/internal/promotions"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/config"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/db/models"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/enums"
	pkgerrors "github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/errors"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/logger"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/metrics"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/pagination"
)

// Service exposes the storefront catalog read path with promotions resolved.
type Service interface {
	GetProduct(ctx context.Context, storeID, productID uuid.UUID) (*ProductDTO, error)
	ListProducts(ctx context.Context, storeID uuid.UUID, params pagination.Params) (*ProductListDTO, error)
}

type promotionLoader interface {
	ListCurrentByStore(ctx context.Context, storeID uuid.UUID, now time.Time) ([]models.Promotion, error)
}

// service implements the catalog read service.
type service struct {
	repo     CatalogRepository
	promos   promotionLoader
	resolver *promotions.Resolver
	limits   pagination.Limits
	logg     *logger.Logger
	pricing  *metrics.PricingMetrics
	now      func() time.Time
}

// NewService constructs a catalog service instance. Metrics may be nil.
func NewService(repo CatalogRepository, promos promotionLoader, resolver *promotions.Resolver, cfg config.CatalogConfig, logg *logger.Logger, pricing *metrics.PricingMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if promos == nil {
		return nil, fmt.Errorf("promotion loader required")
	}
	if resolver == nil {
		resolver = promotions.NewResolver(nil)
	}
	return &service{
		repo:     repo,
		promos:   promos,
		resolver: resolver,
		limits:   pagination.Limits{Default: cfg.DefaultPageSize, Max: cfg.MaxPageSize},
		logg:     logg,
		pricing:  pricing,
		now:      time.Now,
	}, nil
}

// GetProduct returns one product with its promotion resolved and its
// category breadcrumbs attached.
func (s *service) GetProduct(ctx context.Context, storeID, productID uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if product.StoreID != storeID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}

	now := s.now()
	candidates, err := s.loadCandidates(ctx, storeID, now)
	if err != nil {
		return nil, err
	}
	breadcrumbs, err := s.breadcrumbIndex(ctx, []models.Product{*product})
	if err != nil {
		return nil, err
	}

	resolved := s.resolver.ResolveBest(product, candidates, now)
	s.observeResolution(resolved)
	dto := toProductDTO(*product, s.breadcrumbsFor(product, breadcrumbs), resolved)
	return &dto, nil
}

// ListProducts returns one storefront page with every product's promotion
// resolved. Promotions are fetched once for the whole page and partitioned
// by scope; category lookups are deduplicated across the page.
func (s *service) ListProducts(ctx context.Context, storeID uuid.UUID, params pagination.Params) (*ProductListDTO, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	started := s.now()
	limit := s.limits.Normalize(params.Limit)
	products, err := s.repo.ListProductsByStore(ctx, storeID, cursor, s.limits.WithBuffer(params.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	var nextCursor *string
	if len(products) > limit {
		products = products[:limit]
		last := products[len(products)-1]
		encoded := pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		nextCursor = &encoded
	}

	now := s.now()
	candidates, err := s.loadCandidates(ctx, storeID, now)
	if err != nil {
		return nil, err
	}
	breadcrumbs, err := s.breadcrumbIndex(ctx, products)
	if err != nil {
		return nil, err
	}

	items := make([]ProductDTO, 0, len(products))
	for i := range products {
		product := &products[i]
		resolved := s.resolver.ResolveBest(product, candidates, now)
		s.observeResolution(resolved)
		items = append(items, toProductDTO(*product, s.breadcrumbsFor(product, breadcrumbs), resolved))
	}

	s.pricing.ObserveResolutionDuration("list_products", s.now().Sub(started))
	if s.logg != nil {
		s.logg.Debug(s.logg.WithStoreID(ctx, storeID.String()), fmt.Sprintf("listed %d products", len(items)))
	}
	return &ProductListDTO{Items: items, NextCursor: nextCursor}, nil
}

// loadCandidates fetches the store's current promotions once and partitions
// them by scope for the resolver.
func (s *service) loadCandidates(ctx context.Context, storeID uuid.UUID, now time.Time) (promotions.ScopedPromotions, error) {
	var candidates promotions.ScopedPromotions
	current, err := s.promos.ListCurrentByStore(ctx, storeID, now)
	if err != nil {
		return candidates, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list promotions")
	}
	for _, promo := range current {
		switch promo.Scope {
		case enums.PromotionScopeProduct:
			candidates.Product = append(candidates.Product, promo)
		case enums.PromotionScopeCategory:
			candidates.Category = append(candidates.Category, promo)
		case enums.PromotionScopeGlobal:
			candidates.Global = append(candidates.Global, promo)
		}
	}
	return candidates, nil
}

// breadcrumbIndex loads every category referenced by the batch, including
// single-level parents, with one query per level.
func (s *service) breadcrumbIndex(ctx context.Context, products []models.Product) (map[uuid.UUID]models.Category, error) {
	ids := make([]uuid.UUID, 0, len(products))
	seen := make(map[uuid.UUID]struct{}, len(products))
	for _, product := range products {
		if product.CategoryID == nil {
			continue
		}
		if _, ok := seen[*product.CategoryID]; ok {
			continue
		}
		seen[*product.CategoryID] = struct{}{}
		ids = append(ids, *product.CategoryID)
	}

	index := make(map[uuid.UUID]models.Category)
	categories, err := s.repo.ListCategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load categories")
	}

	var parentIDs []uuid.UUID
	for _, category := range categories {
		index[category.ID] = category
		if category.ParentID != nil {
			if _, ok := seen[*category.ParentID]; !ok {
				seen[*category.ParentID] = struct{}{}
				parentIDs = append(parentIDs, *category.ParentID)
			}
		}
	}

	parents, err := s.repo.ListCategoriesByIDs(ctx, parentIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load parent categories")
	}
	for _, category := range parents {
		index[category.ID] = category
	}
	return index, nil
}

// breadcrumbsFor builds the parent-first breadcrumb trail for one product.
func (s *service) breadcrumbsFor(product *models.Product, index map[uuid.UUID]models.Category) []BreadcrumbDTO {
	if product.CategoryID == nil {
		return nil
	}
	category, ok := index[*product.CategoryID]
	if !ok {
		return nil
	}

	var trail []BreadcrumbDTO
	if category.ParentID != nil {
		if parent, ok := index[*category.ParentID]; ok {
			trail = append(trail, BreadcrumbDTO{ID: parent.ID, Name: parent.Name, Slug: parent.Slug})
		}
	}
	return append(trail, BreadcrumbDTO{ID: category.ID, Name: category.Name, Slug: category.Slug})
}

func (s *service) observeResolution(resolved *promotions.ResolvedPromotion) {
	if resolved == nil {
		s.pricing.IncResolution("none")
		return
	}
	s.pricing.IncResolution(resolved.Scope.String())
}

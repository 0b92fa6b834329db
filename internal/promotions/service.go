package promotions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/db/models"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/enums"
	pkgerrors "github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/errors"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/logger"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/validation"
)

// Service exposes admin promotion management operations.
type Service interface {
	CreatePromotion(ctx context.Context, storeID uuid.UUID, input CreatePromotionInput) (*PromotionDTO, error)
	UpdatePromotion(ctx context.Context, storeID, promotionID uuid.UUID, input UpdatePromotionInput) (*PromotionDTO, error)
	DeletePromotion(ctx context.Context, storeID, promotionID uuid.UUID) error
	GetPromotion(ctx context.Context, storeID, promotionID uuid.UUID) (*PromotionDTO, error)
	ListPromotions(ctx context.Context, storeID uuid.UUID) ([]PromotionDTO, error)
}

// CreatePromotionInput holds the validated payload to create a promotion.
type CreatePromotionInput struct {
	Name           string               `json:"name" validate:"required"`
	Scope          enums.PromotionScope `json:"scope" validate:"required"`
	ProductIDs     []uuid.UUID          `json:"product_ids"`
	CategoryIDs    []uuid.UUID          `json:"category_ids"`
	DiscountType   enums.DiscountType   `json:"discount_type" validate:"required"`
	DiscountValue  decimal.Decimal      `json:"discount_value"`
	CompareAtPrice *decimal.Decimal     `json:"compare_at_price"`
	StartDate      time.Time            `json:"start_date" validate:"required"`
	EndDate        time.Time            `json:"end_date" validate:"required"`
	Priority       int                  `json:"priority" validate:"gte=0"`
	IsActive       bool                 `json:"is_active"`
}

// UpdatePromotionInput holds optional mutation values for a promotion.
type UpdatePromotionInput struct {
	Name           *string               `json:"name"`
	Scope          *enums.PromotionScope `json:"scope"`
	ProductIDs     *[]uuid.UUID          `json:"product_ids"`
	CategoryIDs    *[]uuid.UUID          `json:"category_ids"`
	DiscountType   *enums.DiscountType   `json:"discount_type"`
	DiscountValue  *decimal.Decimal      `json:"discount_value"`
	CompareAtPrice *decimal.Decimal      `json:"compare_at_price"`
	StartDate      *time.Time            `json:"start_date"`
	EndDate        *time.Time            `json:"end_date"`
	Priority       *int                  `json:"priority"`
	IsActive       *bool                 `json:"is_active"`
}

// service implements the promotion admin service.
type service struct {
	repo PromotionRepository
	logg *logger.Logger
	now  func() time.Time
}

// NewService constructs a promotion service instance.
func NewService(repo PromotionRepository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("promotion repository required")
	}
	return &service{
		repo: repo,
		logg: logg,
		now:  time.Now,
	}, nil
}

// CreatePromotion validates and persists a new promotion with its derived status.
func (s *service) CreatePromotion(ctx context.Context, storeID uuid.UUID, input CreatePromotionInput) (*PromotionDTO, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := validatePromotionRules(input.Scope, input.ProductIDs, input.CategoryIDs, input.DiscountType, input.DiscountValue, input.CompareAtPrice, input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	now := s.now()
	promo := &models.Promotion{
		StoreID:        storeID,
		Name:           input.Name,
		Scope:          input.Scope,
		ProductIDs:     targetsForScope(input.Scope, enums.PromotionScopeProduct, input.ProductIDs),
		CategoryIDs:    targetsForScope(input.Scope, enums.PromotionScopeCategory, input.CategoryIDs),
		DiscountType:   input.DiscountType,
		DiscountValue:  input.DiscountValue,
		CompareAtPrice: input.CompareAtPrice,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		Priority:       input.Priority,
		IsActive:       input.IsActive,
		Status:         ClassifyStatus(now, input.StartDate, input.EndDate, input.IsActive),
	}

	created, err := s.repo.Create(ctx, promo)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create promotion")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"promotion_id": created.ID,
			"scope":        created.Scope,
			"status":       created.Status,
		}), "promotion created")
	}
	return toPromotionDTO(created), nil
}

// UpdatePromotion applies the partial input and re-derives the status.
func (s *service) UpdatePromotion(ctx context.Context, storeID, promotionID uuid.UUID, input UpdatePromotionInput) (*PromotionDTO, error) {
	promo, err := s.loadStorePromotion(ctx, storeID, promotionID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		promo.Name = *input.Name
	}
	if input.Scope != nil {
		promo.Scope = *input.Scope
	}
	if input.ProductIDs != nil {
		promo.ProductIDs = append([]uuid.UUID(nil), (*input.ProductIDs)...)
	}
	if input.CategoryIDs != nil {
		promo.CategoryIDs = append([]uuid.UUID(nil), (*input.CategoryIDs)...)
	}
	if input.DiscountType != nil {
		promo.DiscountType = *input.DiscountType
	}
	if input.DiscountValue != nil {
		promo.DiscountValue = *input.DiscountValue
	}
	if input.CompareAtPrice != nil {
		promo.CompareAtPrice = input.CompareAtPrice
	}
	if input.StartDate != nil {
		promo.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		promo.EndDate = *input.EndDate
	}
	if input.Priority != nil {
		promo.Priority = *input.Priority
	}
	if input.IsActive != nil {
		promo.IsActive = *input.IsActive
	}

	if promo.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if promo.Priority < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "priority must not be negative")
	}
	if err := validatePromotionRules(promo.Scope, promo.ProductIDs, promo.CategoryIDs, promo.DiscountType, promo.DiscountValue, promo.CompareAtPrice, promo.StartDate, promo.EndDate); err != nil {
		return nil, err
	}

	promo.ProductIDs = targetsForScope(promo.Scope, enums.PromotionScopeProduct, promo.ProductIDs)
	promo.CategoryIDs = targetsForScope(promo.Scope, enums.PromotionScopeCategory, promo.CategoryIDs)
	promo.Status = ClassifyStatus(s.now(), promo.StartDate, promo.EndDate, promo.IsActive)

	updated, err := s.repo.Update(ctx, promo)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update promotion")
	}
	return toPromotionDTO(updated), nil
}

// DeletePromotion removes the promotion after checking ownership.
func (s *service) DeletePromotion(ctx context.Context, storeID, promotionID uuid.UUID) error {
	if _, err := s.loadStorePromotion(ctx, storeID, promotionID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, promotionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete promotion")
	}
	return nil
}

// GetPromotion returns the promotion with a freshly derived status.
func (s *service) GetPromotion(ctx context.Context, storeID, promotionID uuid.UUID) (*PromotionDTO, error) {
	promo, err := s.loadStorePromotion(ctx, storeID, promotionID)
	if err != nil {
		return nil, err
	}
	promo.Status = ClassifyStatus(s.now(), promo.StartDate, promo.EndDate, promo.IsActive)
	return toPromotionDTO(promo), nil
}

// ListPromotions returns the store's promotions with derived statuses.
func (s *service) ListPromotions(ctx context.Context, storeID uuid.UUID) ([]PromotionDTO, error) {
	promos, err := s.repo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list promotions")
	}

	now := s.now()
	out := make([]PromotionDTO, 0, len(promos))
	for i := range promos {
		promos[i].Status = ClassifyStatus(now, promos[i].StartDate, promos[i].EndDate, promos[i].IsActive)
		out = append(out, *toPromotionDTO(&promos[i]))
	}
	return out, nil
}

func (s *service) loadStorePromotion(ctx context.Context, storeID, promotionID uuid.UUID) (*models.Promotion, error) {
	promo, err := s.repo.FindByID(ctx, promotionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "promotion not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load promotion")
	}
	if promo.StoreID != storeID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "promotion not found")
	}
	return promo, nil
}

// validatePromotionRules enforces the domain constraints shared by create and
// update. When a compare_at_price is present the promotion runs in comparison
// mode and the discount fields are not checked, since resolution ignores them.
func validatePromotionRules(scope enums.PromotionScope, productIDs, categoryIDs []uuid.UUID, discountType enums.DiscountType, discountValue decimal.Decimal, compareAt *decimal.Decimal, start, end time.Time) error {
	if !scope.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown promotion scope")
	}
	if !end.After(start) {
		return pkgerrors.New(pkgerrors.CodeValidation, "end_date must be after start_date")
	}

	switch scope {
	case enums.PromotionScopeProduct:
		if len(productIDs) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "product scope requires at least one product id")
		}
	case enums.PromotionScopeCategory:
		if len(categoryIDs) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "category scope requires at least one category id")
		}
	}

	if compareAt != nil {
		if !compareAt.IsPositive() {
			return pkgerrors.New(pkgerrors.CodeValidation, "compare_at_price must be positive")
		}
		return nil
	}

	if !discountType.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown discount type")
	}
	if !discountValue.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount_value must be positive")
	}
	if discountType == enums.DiscountTypePercentage && discountValue.GreaterThan(decimal.NewFromInt(100)) {
		return pkgerrors.New(pkgerrors.CodeValidation, "percentage discount cannot exceed 100")
	}
	return nil
}

// targetsForScope keeps the target array only when it belongs to the scope.
func targetsForScope(scope, wanted enums.PromotionScope, ids []uuid.UUID) []uuid.UUID {
	if scope != wanted {
		return nil
	}
	return append([]uuid.UUID(nil), ids...)
}

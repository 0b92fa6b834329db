package variants

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/db"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/db/models"
	pkgerrors "github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/errors"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/logger"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/metrics"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/types"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/validation"
)

// Service exposes variant, combination and group price management for a
// product.
type Service interface {
	CreateVariant(ctx context.Context, productID uuid.UUID, input CreateVariantInput) (*VariantDTO, error)
	DeleteVariant(ctx context.Context, productID, variantID uuid.UUID) error
	ListVariants(ctx context.Context, productID uuid.UUID) ([]VariantDTO, error)
	GenerateCombinations(ctx context.Context, productID uuid.UUID) (*GenerateResult, error)
	ListCombinations(ctx context.Context, productID uuid.UUID) ([]CombinationDTO, error)
	UpdateCombination(ctx context.Context, productID, combinationID uuid.UUID, input UpdateCombinationInput) (*CombinationDTO, error)
	SetGroupPrice(ctx context.Context, productID, valueID uuid.UUID, price decimal.Decimal) (*CascadeResult, error)
}

// CreateVariantInput holds the validated payload to create a variant with
// its values.
type CreateVariantInput struct {
	Name   string   `json:"name" validate:"required"`
	Values []string `json:"values" validate:"required,min=1,dive,required"`
}

// UpdateCombinationInput holds optional mutation values for a combination.
// Price fields distinguish "set to null" from "leave unchanged"; clearing
// the price puts the combination back on group or base pricing.
type UpdateCombinationInput struct {
	Price          types.NullableDecimal `json:"price"`
	CompareAtPrice types.NullableDecimal `json:"compare_at_price"`
	Cost           types.NullableDecimal `json:"cost"`
	StockQuantity  *int                  `json:"stock_quantity"`
	IsActive       *bool                 `json:"is_active"`
}

type productLoader interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// service implements the variant admin service.
type service struct {
	repo     VariantRepository
	products productLoader
	logg     *logger.Logger
	pricing  *metrics.PricingMetrics
}

// NewService constructs a variant service instance. Metrics may be nil.
func NewService(repo VariantRepository, products productLoader, logg *logger.Logger, pricing *metrics.PricingMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("variant repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{
		repo:     repo,
		products: products,
		logg:     logg,
		pricing:  pricing,
	}, nil
}

// CreateVariant validates and persists a new variant dimension.
func (s *service) CreateVariant(ctx context.Context, productID uuid.UUID, input CreateVariantInput) (*VariantDTO, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if _, err := s.loadProduct(ctx, productID); err != nil {
		return nil, err
	}

	variant := &models.Variant{
		ProductID: productID,
		Name:      input.Name,
	}
	for i, value := range input.Values {
		variant.Values = append(variant.Values, models.VariantValue{
			Value:    value,
			Position: i,
		})
	}

	created, err := s.repo.CreateVariant(ctx, variant)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create variant")
	}

	dto := toVariantDTO(*created)
	return &dto, nil
}

// DeleteVariant removes the variant and its values. Existing combinations
// keep their rows; re-generation reconciles them.
func (s *service) DeleteVariant(ctx context.Context, productID, variantID uuid.UUID) error {
	variant, err := s.repo.FindVariantByID(ctx, variantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "variant not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load variant")
	}
	if variant.ProductID != productID {
		return pkgerrors.New(pkgerrors.CodeNotFound, "variant not found")
	}
	if err := s.repo.DeleteVariant(ctx, variantID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete variant")
	}
	return nil
}

// ListVariants returns the product's variants in creation order.
func (s *service) ListVariants(ctx context.Context, productID uuid.UUID) ([]VariantDTO, error) {
	variants, err := s.repo.ListVariantsByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list variants")
	}

	dtos := make([]VariantDTO, 0, len(variants))
	for _, variant := range variants {
		dtos = append(dtos, toVariantDTO(variant))
	}
	return dtos, nil
}

// GenerateCombinations materializes the cartesian product of the product's
// variant values, creating only the combinations not yet stored. Existing
// combinations are matched by canonical value key, so re-running after a
// variant edit adds the new combinations without disturbing the old ones.
func (s *service) GenerateCombinations(ctx context.Context, productID uuid.UUID) (*GenerateResult, error) {
	variants, err := s.repo.ListVariantsByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list variants")
	}
	if len(variants) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product has no variants to combine")
	}

	valueLists := make([][]uuid.UUID, 0, len(variants))
	for _, variant := range variants {
		if len(variant.Values) == 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("variant %q has no values", variant.Name))
		}
		ids := make([]uuid.UUID, 0, len(variant.Values))
		for _, value := range variant.Values {
			ids = append(ids, value.ID)
		}
		valueLists = append(valueLists, ids)
	}

	existing, err := s.repo.ListCombinationsByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list combinations")
	}
	existingKeys := make(map[string]struct{}, len(existing))
	for _, combo := range existing {
		existingKeys[combo.ValueKey] = struct{}{}
	}

	generated := GenerateCombinations(valueLists)
	missing := MissingCombinations(generated, existingKeys)

	rows := make([]models.VariantCombination, 0, len(missing))
	for _, valueIDs := range missing {
		rows = append(rows, models.VariantCombination{
			ProductID: productID,
			ValueIDs:  valueIDs,
			ValueKey:  CombinationKey(valueIDs),
			IsActive:  true,
		})
	}
	if _, err := s.repo.CreateCombinations(ctx, rows); err != nil {
		if db.IsUniqueViolation(err, "uq_combination_product_key") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "combination already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create combinations")
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"product_id": productID,
			"created":    len(rows),
			"skipped":    len(generated) - len(missing),
		}), "combinations generated")
	}
	return &GenerateResult{
		Created: len(rows),
		Skipped: len(generated) - len(missing),
		Total:   len(generated),
	}, nil
}

// ListCombinations returns the product's combinations with effective prices
// resolved against group prices and the product base price.
func (s *service) ListCombinations(ctx context.Context, productID uuid.UUID) ([]CombinationDTO, error) {
	product, err := s.loadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	combos, err := s.repo.ListCombinationsByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list combinations")
	}
	variants, err := s.repo.ListVariantsByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list variants")
	}
	groupPrices, err := s.groupPriceIndex(ctx, productID)
	if err != nil {
		return nil, err
	}

	dtos := make([]CombinationDTO, 0, len(combos))
	for _, combo := range combos {
		ordered := OrderValueIDs(combo.ValueIDs, variants)
		resolved := ResolveCombination(combo, ordered, groupPrices, product.Price)
		dtos = append(dtos, toCombinationDTO(combo, resolved))
	}
	return dtos, nil
}

// UpdateCombination applies the partial input to one combination.
func (s *service) UpdateCombination(ctx context.Context, productID, combinationID uuid.UUID, input UpdateCombinationInput) (*CombinationDTO, error) {
	combo, err := s.repo.FindCombinationByID(ctx, combinationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "combination not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load combination")
	}
	if combo.ProductID != productID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "combination not found")
	}

	if input.Price.Valid {
		if input.Price.Value != nil && !input.Price.Value.IsPositive() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
		}
		combo.Price = input.Price.Value
	}
	if input.CompareAtPrice.Valid {
		if input.CompareAtPrice.Value != nil && !input.CompareAtPrice.Value.IsPositive() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "compare_at_price must be positive")
		}
		combo.CompareAtPrice = input.CompareAtPrice.Value
	}
	if input.Cost.Valid {
		if input.Cost.Value != nil && input.Cost.Value.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "cost must not be negative")
		}
		combo.Cost = input.Cost.Value
	}
	if input.StockQuantity != nil {
		if *input.StockQuantity < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "stock_quantity must not be negative")
		}
		combo.StockQuantity = *input.StockQuantity
	}
	if input.IsActive != nil {
		combo.IsActive = *input.IsActive
	}

	updated, err := s.repo.UpdateCombination(ctx, combo)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update combination")
	}

	product, err := s.loadProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	variants, err := s.repo.ListVariantsByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list variants")
	}
	groupPrices, err := s.groupPriceIndex(ctx, productID)
	if err != nil {
		return nil, err
	}

	ordered := OrderValueIDs(updated.ValueIDs, variants)
	resolved := ResolveCombination(*updated, ordered, groupPrices, product.Price)
	dto := toCombinationDTO(*updated, resolved)
	return &dto, nil
}

// SetGroupPrice stores a bulk price for one variant value and cascades it to
// every combination containing that value which has no individual price.
// Combinations with their own price are skipped, never overwritten, so the
// cascade is idempotent. Failures on individual combinations do not abort
// the run; they are aggregated and reported alongside the ids that did
// succeed.
func (s *service) SetGroupPrice(ctx context.Context, productID, valueID uuid.UUID, price decimal.Decimal) (*CascadeResult, error) {
	if !price.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be positive")
	}

	variants, err := s.repo.ListVariantsByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list variants")
	}
	if !valueBelongsToProduct(valueID, variants) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "variant value not found")
	}

	groupPrice, err := s.repo.UpsertGroupPrice(ctx, &models.VariantGroupPrice{
		ProductID:      productID,
		VariantValueID: valueID,
		Price:          price,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upsert group price")
	}

	combos, err := s.repo.ListCombinationsByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list combinations")
	}

	result := &CascadeResult{GroupPrice: toGroupPriceDTO(*groupPrice)}
	var cascadeErr error
	for _, combo := range combos {
		if !combo.ValueIDs.Contains(valueID) {
			continue
		}
		if combo.Price != nil {
			result.SkippedIDs = append(result.SkippedIDs, combo.ID)
			continue
		}
		updated, err := s.repo.SetCombinationPriceIfUnset(ctx, combo.ID, price)
		if err != nil {
			result.FailedIDs = append(result.FailedIDs, combo.ID)
			cascadeErr = multierr.Append(cascadeErr, fmt.Errorf("combination %s: %w", combo.ID, err))
			if s.logg != nil {
				dump := pkgerrors.Dump(err)
				s.logg.Error(s.logg.WithFields(ctx, map[string]any{
					"combination_id": combo.ID,
					"pg_code":        dump.PGCode,
					"pg_constraint":  dump.PGConstraint,
				}), "cascade write failed", err)
			}
			continue
		}
		if updated {
			result.UpdatedIDs = append(result.UpdatedIDs, combo.ID)
		} else {
			result.SkippedIDs = append(result.SkippedIDs, combo.ID)
		}
	}

	s.pricing.AddCascadeUpdated(len(result.UpdatedIDs))
	s.pricing.AddCascadeSkipped(len(result.SkippedIDs))
	s.pricing.AddCascadeFailures(len(result.FailedIDs))

	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"product_id": productID,
			"value_id":   valueID,
			"updated":    len(result.UpdatedIDs),
			"skipped":    len(result.SkippedIDs),
			"failed":     len(result.FailedIDs),
		}), "group price cascade finished")
	}

	if cascadeErr != nil {
		failed := make([]string, 0, len(result.FailedIDs))
		for _, id := range result.FailedIDs {
			failed = append(failed, id.String())
		}
		return result, pkgerrors.Wrap(pkgerrors.CodePartialFailure, cascadeErr, "group price cascade").
			WithDetails(map[string]any{"failed_combination_ids": failed})
	}
	return result, nil
}

func (s *service) loadProduct(ctx context.Context, productID uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

func (s *service) groupPriceIndex(ctx context.Context, productID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	rows, err := s.repo.ListGroupPricesByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list group prices")
	}
	index := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		index[row.VariantValueID] = row.Price
	}
	return index, nil
}

func valueBelongsToProduct(valueID uuid.UUID, variants []models.Variant) bool {
	if valueID == uuid.Nil {
		return false
	}
	for _, variant := range variants {
		for _, value := range variant.Values {
			if value.ID == valueID {
				return true
			}
		}
	}
	return false
}

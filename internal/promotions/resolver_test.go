package promotions

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/internal/pricing"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/db/models"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/enums"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/types"
)

var resolveNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func testProduct(price int64) *models.Product {
	categoryID := uuid.New()
	return &models.Product{
		ID:         uuid.New(),
		StoreID:    uuid.New(),
		CategoryID: &categoryID,
		Name:       "Basic Tee",
		Price:      decimal.NewFromInt(price),
		IsActive:   true,
	}
}

func activeWindow() (time.Time, time.Time) {
	return resolveNow.Add(-24 * time.Hour), resolveNow.Add(24 * time.Hour)
}

func productPromo(product *models.Product, discountType enums.DiscountType, value int64, priority int) models.Promotion {
	start, end := activeWindow()
	return models.Promotion{
		ID:            uuid.New(),
		StoreID:       product.StoreID,
		Name:          "product promo",
		Scope:         enums.PromotionScopeProduct,
		ProductIDs:    types.UUIDArray{product.ID},
		DiscountType:  discountType,
		DiscountValue: decimal.NewFromInt(value),
		StartDate:     start,
		EndDate:       end,
		Priority:      priority,
		IsActive:      true,
		CreatedAt:     resolveNow.Add(-time.Hour),
	}
}

func categoryPromo(product *models.Product, value int64, priority int) models.Promotion {
	start, end := activeWindow()
	return models.Promotion{
		ID:            uuid.New(),
		StoreID:       product.StoreID,
		Name:          "category promo",
		Scope:         enums.PromotionScopeCategory,
		CategoryIDs:   types.UUIDArray{*product.CategoryID},
		DiscountType:  enums.DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(value),
		StartDate:     start,
		EndDate:       end,
		Priority:      priority,
		IsActive:      true,
		CreatedAt:     resolveNow.Add(-time.Hour),
	}
}

func globalPromo(value int64, priority int) models.Promotion {
	start, end := activeWindow()
	return models.Promotion{
		ID:            uuid.New(),
		Name:          "global promo",
		Scope:         enums.PromotionScopeGlobal,
		DiscountType:  enums.DiscountTypePercentage,
		DiscountValue: decimal.NewFromInt(value),
		StartDate:     start,
		EndDate:       end,
		Priority:      priority,
		IsActive:      true,
		CreatedAt:     resolveNow.Add(-time.Hour),
	}
}

func TestResolveBestScopePrecedence(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(pricing.NewCalculator())
	product := testProduct(100)

	// product scope at priority 1 must beat category scope at priority 100
	candidates := ScopedPromotions{
		Product:  []models.Promotion{productPromo(product, enums.DiscountTypePercentage, 20, 1)},
		Category: []models.Promotion{categoryPromo(product, 10, 100)},
		Global:   []models.Promotion{globalPromo(50, 100)},
	}

	got := resolver.ResolveBest(product, candidates, resolveNow)
	if got == nil {
		t.Fatal("expected a resolved promotion")
	}
	if got.Scope != enums.PromotionScopeProduct {
		t.Fatalf("expected product scope to win, got %s", got.Scope)
	}
	if !got.PromotionalPrice.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("expected price 80, got %s", got.PromotionalPrice)
	}
}

func TestResolveBestFallsThroughScopes(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(pricing.NewCalculator())
	product := testProduct(100)

	candidates := ScopedPromotions{
		Category: []models.Promotion{categoryPromo(product, 10, 0)},
		Global:   []models.Promotion{globalPromo(50, 100)},
	}

	got := resolver.ResolveBest(product, candidates, resolveNow)
	if got == nil || got.Scope != enums.PromotionScopeCategory {
		t.Fatalf("expected category scope to win, got %+v", got)
	}
	if !got.PromotionalPrice.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("expected price 90, got %s", got.PromotionalPrice)
	}

	candidates.Category = nil
	got = resolver.ResolveBest(product, candidates, resolveNow)
	if got == nil || got.Scope != enums.PromotionScopeGlobal {
		t.Fatalf("expected global scope fallback, got %+v", got)
	}
}

func TestResolveBestPriorityAndRecencyTieBreak(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(pricing.NewCalculator())
	product := testProduct(100)

	older := categoryPromo(product, 10, 5)
	older.CreatedAt = resolveNow.Add(-48 * time.Hour)
	newer := categoryPromo(product, 15, 5)
	newer.CreatedAt = resolveNow.Add(-time.Minute)
	low := categoryPromo(product, 50, 1)

	got := resolver.ResolveBest(product, ScopedPromotions{
		Category: []models.Promotion{older, low, newer},
	}, resolveNow)
	if got == nil {
		t.Fatal("expected a resolved promotion")
	}
	if got.Promotion.ID != newer.ID {
		t.Fatalf("expected the most recently created promotion to win the tie")
	}
}

func TestResolveBestSkipsInactiveAndOutOfWindow(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(pricing.NewCalculator())
	product := testProduct(100)

	flaggedOff := productPromo(product, enums.DiscountTypePercentage, 20, 0)
	flaggedOff.IsActive = false

	expired := productPromo(product, enums.DiscountTypePercentage, 30, 0)
	expired.StartDate = resolveNow.Add(-72 * time.Hour)
	expired.EndDate = resolveNow.Add(-48 * time.Hour)

	scheduled := productPromo(product, enums.DiscountTypePercentage, 40, 0)
	scheduled.StartDate = resolveNow.Add(24 * time.Hour)
	scheduled.EndDate = resolveNow.Add(48 * time.Hour)

	got := resolver.ResolveBest(product, ScopedPromotions{
		Product: []models.Promotion{flaggedOff, expired, scheduled},
	}, resolveNow)
	if got != nil {
		t.Fatalf("expected no applicable promotion, got %+v", got)
	}
}

func TestResolveBestIgnoresUntargetedPromotions(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(pricing.NewCalculator())
	product := testProduct(100)

	other := testProduct(100)
	foreign := productPromo(other, enums.DiscountTypePercentage, 20, 0)

	otherCategory := categoryPromo(product, 10, 0)
	otherCategory.CategoryIDs = types.UUIDArray{uuid.New()}

	got := resolver.ResolveBest(product, ScopedPromotions{
		Product:  []models.Promotion{foreign},
		Category: []models.Promotion{otherCategory},
	}, resolveNow)
	if got != nil {
		t.Fatalf("expected no promotion for untargeted product, got %+v", got)
	}
}

func TestResolveBestCategoryScopeNeedsProductCategory(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(pricing.NewCalculator())
	product := testProduct(100)
	promo := categoryPromo(product, 10, 0)
	product.CategoryID = nil

	got := resolver.ResolveBest(product, ScopedPromotions{Category: []models.Promotion{promo}}, resolveNow)
	if got != nil {
		t.Fatalf("expected uncategorized product to skip category promotions, got %+v", got)
	}
}

func TestResolveBestComparisonMode(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(pricing.NewCalculator())
	product := testProduct(100)

	promo := productPromo(product, enums.DiscountTypePercentage, 90, 0)
	compareAt := decimal.NewFromInt(150)
	promo.CompareAtPrice = &compareAt

	got := resolver.ResolveBest(product, ScopedPromotions{Product: []models.Promotion{promo}}, resolveNow)
	if got == nil {
		t.Fatal("expected a resolved promotion")
	}
	if !got.ComparisonMode {
		t.Fatal("expected comparison mode")
	}
	if !got.PromotionalPrice.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("comparison mode must charge the product price, got %s", got.PromotionalPrice)
	}
	if !got.OriginalPrice.Equal(compareAt) {
		t.Fatalf("expected reference price 150, got %s", got.OriginalPrice)
	}
	if !got.Savings.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected savings 50, got %s", got.Savings)
	}
}

func TestResolveBestFailsOpenOnNonDiscount(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(pricing.NewCalculator())
	product := testProduct(100)

	// fixed amount of zero produces no reduction; the promotion must not apply
	promo := productPromo(product, enums.DiscountTypeFixedAmount, 0, 0)

	got := resolver.ResolveBest(product, ScopedPromotions{Product: []models.Promotion{promo}}, resolveNow)
	if got != nil {
		t.Fatalf("expected fail-open to full price, got %+v", got)
	}
}

func TestResolveBestNilProduct(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(nil)
	if got := resolver.ResolveBest(nil, ScopedPromotions{}, resolveNow); got != nil {
		t.Fatalf("expected nil for nil product, got %+v", got)
	}
}

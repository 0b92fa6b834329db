package promotions

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/internal/pricing"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/db/models"
	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/enums"
)

// ScopedPromotions carries the candidate promotions for one batch,
// pre-partitioned by scope so callers fetch each list once per listing
// instead of once per product.
type ScopedPromotions struct {
	Product  []models.Promotion
	Category []models.Promotion
	Global   []models.Promotion
}

// ResolvedPromotion is the single effective promotion for a product.
type ResolvedPromotion struct {
	Promotion models.Promotion
	Scope     enums.PromotionScope

	// PromotionalPrice is what the customer pays. OriginalPrice is the
	// reference price shown struck through. In comparison mode the paid
	// price is the product's own price and the reference comes from the
	// promotion's compare_at_price.
	PromotionalPrice decimal.Decimal
	OriginalPrice    decimal.Decimal
	Savings          decimal.Decimal
	ComparisonMode   bool
}

// Resolver selects the effective promotion for a product. Resolution is pure
// computation over the supplied records; it never mutates a promotion.
type Resolver struct {
	calc *pricing.Calculator
}

// NewResolver builds a resolver backed by the given calculator.
func NewResolver(calc *pricing.Calculator) *Resolver {
	if calc == nil {
		calc = pricing.NewCalculator()
	}
	return &Resolver{calc: calc}
}

// ResolveBest returns the single applicable promotion for the product, or nil
// when none applies. Precedence is scope-first: any applicable product-scope
// promotion beats every category-scope one regardless of priority, and
// category beats global. Within a scope the highest priority wins; remaining
// ties go to the most recently created promotion.
func (r *Resolver) ResolveBest(product *models.Product, candidates ScopedPromotions, now time.Time) *ResolvedPromotion {
	if product == nil {
		return nil
	}

	scopes := []struct {
		scope  enums.PromotionScope
		promos []models.Promotion
	}{
		{enums.PromotionScopeProduct, candidates.Product},
		{enums.PromotionScopeCategory, candidates.Category},
		{enums.PromotionScopeGlobal, candidates.Global},
	}

	for _, entry := range scopes {
		winner := pickWinner(product, entry.scope, entry.promos, now)
		if winner == nil {
			continue
		}
		return r.resolvePrice(product, *winner, entry.scope)
	}
	return nil
}

// pickWinner filters the scope's candidates down to the ones active now and
// targeting the product, then applies priority and recency tie-breaking.
func pickWinner(product *models.Product, scope enums.PromotionScope, promos []models.Promotion, now time.Time) *models.Promotion {
	var best *models.Promotion
	for i := range promos {
		promo := &promos[i]
		if ClassifyStatus(now, promo.StartDate, promo.EndDate, promo.IsActive) != enums.PromotionStatusActive {
			continue
		}
		if !targets(product, scope, promo) {
			continue
		}
		if best == nil || beats(promo, best) {
			best = promo
		}
	}
	return best
}

func targets(product *models.Product, scope enums.PromotionScope, promo *models.Promotion) bool {
	switch scope {
	case enums.PromotionScopeProduct:
		return promo.ProductIDs.Contains(product.ID)
	case enums.PromotionScopeCategory:
		return product.CategoryID != nil && promo.CategoryIDs.Contains(*product.CategoryID)
	case enums.PromotionScopeGlobal:
		return true
	default:
		return false
	}
}

func beats(candidate, incumbent *models.Promotion) bool {
	if candidate.Priority != incumbent.Priority {
		return candidate.Priority > incumbent.Priority
	}
	return candidate.CreatedAt.After(incumbent.CreatedAt)
}

// resolvePrice computes the price outcome for the winning promotion. A
// promotion carrying a compare_at_price runs in comparison mode: the charged
// price stays at the product price and the discount fields are ignored. A
// discount that does not land strictly below the product price resolves to
// nil so a non-discount is never displayed.
func (r *Resolver) resolvePrice(product *models.Product, promo models.Promotion, scope enums.PromotionScope) *ResolvedPromotion {
	if promo.CompareAtPrice != nil {
		original := *promo.CompareAtPrice
		return &ResolvedPromotion{
			Promotion:        promo,
			Scope:            scope,
			PromotionalPrice: product.Price,
			OriginalPrice:    original,
			Savings:          r.calc.Savings(original, product.Price),
			ComparisonMode:   true,
		}
	}

	computed := r.calc.Apply(product.Price, promo.DiscountType, promo.DiscountValue)
	if !r.calc.Discounts(product.Price, computed) {
		return nil
	}

	return &ResolvedPromotion{
		Promotion:        promo,
		Scope:            scope,
		PromotionalPrice: computed,
		OriginalPrice:    product.Price,
		Savings:          r.calc.Savings(product.Price, computed),
	}
}

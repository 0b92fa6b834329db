package variants

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/db/models"
)

// PriceSource names where a combination's effective price came from.
type PriceSource string

const (
	PriceSourceCombination PriceSource = "combination"
	PriceSourceGroup       PriceSource = "group"
	PriceSourceBase        PriceSource = "base"
)

// ResolvedCombination is a combination with its effective price attached.
type ResolvedCombination struct {
	Combination models.VariantCombination
	Price       decimal.Decimal
	PriceSource PriceSource
	Stock       int
	Active      bool
}

// ResolveCombination computes the effective price for one combination.
// Precedence: the combination's own price, else the first group price found
// while walking orderedValueIDs (the combination's value ids arranged in the
// product's variant creation order), else the product base price. Stock and
// active always come from the combination row; group pricing never alters
// them. When several of the combination's values carry a group price, the
// creation-order walk makes the winner deterministic.
func ResolveCombination(combo models.VariantCombination, orderedValueIDs []uuid.UUID, groupPrices map[uuid.UUID]decimal.Decimal, basePrice decimal.Decimal) ResolvedCombination {
	resolved := ResolvedCombination{
		Combination: combo,
		Stock:       combo.StockQuantity,
		Active:      combo.IsActive,
	}

	if combo.Price != nil {
		resolved.Price = *combo.Price
		resolved.PriceSource = PriceSourceCombination
		return resolved
	}

	for _, valueID := range orderedValueIDs {
		if price, ok := groupPrices[valueID]; ok {
			resolved.Price = price
			resolved.PriceSource = PriceSourceGroup
			return resolved
		}
	}

	resolved.Price = basePrice
	resolved.PriceSource = PriceSourceBase
	return resolved
}

// OrderValueIDs arranges the combination's value ids to follow the product's
// variant creation order. Ids not present in any supplied variant keep their
// stored order at the tail so resolution stays total.
func OrderValueIDs(valueIDs []uuid.UUID, variants []models.Variant) []uuid.UUID {
	member := make(map[uuid.UUID]struct{}, len(valueIDs))
	for _, id := range valueIDs {
		member[id] = struct{}{}
	}

	ordered := make([]uuid.UUID, 0, len(valueIDs))
	placed := make(map[uuid.UUID]struct{}, len(valueIDs))
	for _, variant := range variants {
		for _, value := range variant.Values {
			if _, ok := member[value.ID]; ok {
				ordered = append(ordered, value.ID)
				placed[value.ID] = struct{}{}
			}
		}
	}
	for _, id := range valueIDs {
		if _, ok := placed[id]; !ok {
			ordered = append(ordered, id)
		}
	}
	return ordered
}

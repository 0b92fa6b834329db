package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/ottivsolutionecosystem/multi-store-swift-shop-sub000/pkg/enums"
)

var oneHundred = decimal.NewFromInt(100)

// Calculator computes discounted prices. It performs no rounding; callers
// round to currency precision at display time only.
type Calculator struct{}

// NewCalculator creates a stateless calculator instance.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Apply computes the price after the discount is applied to originalPrice.
// A negative result clamps to zero. An unknown discount type returns the
// original price unchanged, which downstream resolution treats as "no
// applicable promotion".
func (c *Calculator) Apply(originalPrice decimal.Decimal, discountType enums.DiscountType, discountValue decimal.Decimal) decimal.Decimal {
	var result decimal.Decimal

	switch discountType {
	case enums.DiscountTypePercentage:
		result = originalPrice.Mul(oneHundred.Sub(discountValue)).Div(oneHundred)
	case enums.DiscountTypeFixedAmount:
		result = originalPrice.Sub(discountValue)
	default:
		return originalPrice
	}

	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}

// Savings returns originalPrice - discountedPrice, clamped to zero.
func (c *Calculator) Savings(originalPrice, discountedPrice decimal.Decimal) decimal.Decimal {
	savings := originalPrice.Sub(discountedPrice)
	if savings.IsNegative() {
		return decimal.Zero
	}
	return savings
}

// Discounts reports whether the computed price is strictly below the
// original. Promotions that fail this check are not applicable.
func (c *Calculator) Discounts(originalPrice, computedPrice decimal.Decimal) bool {
	return computedPrice.LessThan(originalPrice)
}

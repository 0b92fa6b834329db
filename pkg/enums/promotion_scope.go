package enums

import "fmt"

// PromotionScope represents the breadth of a promotion's applicability.
type PromotionScope string

const (
	PromotionScopeProduct  PromotionScope = "product"
	PromotionScopeCategory PromotionScope = "category"
	PromotionScopeGlobal   PromotionScope = "global"
)

var validPromotionScopes = []PromotionScope{
	PromotionScopeProduct,
	PromotionScopeCategory,
	PromotionScopeGlobal,
}

// String implements fmt.Stringer.
func (s PromotionScope) String() string {
	return string(s)
}

// IsValid reports whether the value is a known PromotionScope.
func (s PromotionScope) IsValid() bool {
	for _, candidate := range validPromotionScopes {
		if candidate == s {
			return true
		}
	}
	return false
}

// RequiresTargets reports whether the scope needs an explicit target id set.
func (s PromotionScope) RequiresTargets() bool {
	return s == PromotionScopeProduct || s == PromotionScopeCategory
}

// ParsePromotionScope converts raw input into a PromotionScope.
func ParsePromotionScope(value string) (PromotionScope, error) {
	for _, candidate := range validPromotionScopes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid promotion scope %q", value)
}

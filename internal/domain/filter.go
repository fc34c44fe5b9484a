package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FilterCriteria selects a view of the catalog. Empty selections and nil
// bounds pass everything through.
type FilterCriteria struct {
	Platforms  []string
	Categories []string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// Validate rejects negative bounds and an inverted range.
func (f FilterCriteria) Validate() error {
	if f.MinPrice != nil && f.MinPrice.IsNegative() {
		return fmt.Errorf("%w: min price %s is negative", ErrInvalidFilter, f.MinPrice)
	}
	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		return fmt.Errorf("%w: max price %s is negative", ErrInvalidFilter, f.MaxPrice)
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return fmt.Errorf("%w: min price %s above max price %s", ErrInvalidFilter, f.MinPrice, f.MaxPrice)
	}
	return nil
}

// Matches reports whether g passes every set criterion: platform and category
// membership (case-insensitive, trimmed) and the inclusive price bounds,
// which apply to the effective price.
func (f FilterCriteria) Matches(g GameListing) bool {
	if len(f.Platforms) > 0 && !containsFold(f.Platforms, g.Platform) {
		return false
	}
	if len(f.Categories) > 0 && !containsFold(f.Categories, g.Category) {
		return false
	}
	price := g.EffectivePrice()
	if f.MinPrice != nil && price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && price.GreaterThan(*f.MaxPrice) {
		return false
	}
	return true
}

// IsZero reports whether no criterion is set.
func (f FilterCriteria) IsZero() bool {
	return len(f.Platforms) == 0 && len(f.Categories) == 0 && f.MinPrice == nil && f.MaxPrice == nil
}

func containsFold(values []string, v string) bool {
	v = strings.TrimSpace(v)
	for _, candidate := range values {
		if strings.EqualFold(strings.TrimSpace(candidate), v) {
			return true
		}
	}
	return false
}

package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// GameListing is one purchasable game in the catalog.
type GameListing struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Platform        string          `json:"platform"`
	Category        string          `json:"category"`
	BasePrice       decimal.Decimal `json:"basePrice"`
	DiscountPercent int             `json:"discountPercent"`
}

// EffectivePrice is the base price after the discount, rounded to cents.
func (g GameListing) EffectivePrice() decimal.Decimal {
	if g.DiscountPercent <= 0 {
		return g.BasePrice.Round(2)
	}
	factor := hundred.Sub(decimal.NewFromInt(int64(g.DiscountPercent))).Div(hundred)
	return g.BasePrice.Mul(factor).Round(2)
}

// Discounted reports whether a strikethrough price should be shown.
func (g GameListing) Discounted() bool {
	return g.DiscountPercent > 0
}

// Validate checks the listing against the catalog invariants: a title, a
// non-negative price in whole cents and a discount in [0,100].
func (g GameListing) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("%w: id=%d title required", ErrInvalidListing, g.ID)
	}
	if g.BasePrice.IsNegative() {
		return fmt.Errorf("%w: id=%d base price %s is negative", ErrInvalidListing, g.ID, g.BasePrice)
	}
	if !g.BasePrice.Equal(g.BasePrice.Truncate(2)) {
		return fmt.Errorf("%w: id=%d base price %s has more than two decimals", ErrInvalidListing, g.ID, g.BasePrice)
	}
	if g.DiscountPercent < 0 || g.DiscountPercent > 100 {
		return fmt.Errorf("%w: id=%d discount %d outside [0,100]", ErrInvalidListing, g.ID, g.DiscountPercent)
	}
	return nil
}

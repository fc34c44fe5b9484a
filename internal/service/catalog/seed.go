package catalog

import (
	"github.com/shopspring/decimal"
	"runplay-store/internal/domain"
)

// Seed returns the built-in demo catalog.
func Seed() []domain.GameListing {
	return []domain.GameListing{
		{ID: 1, Title: "CyberQuest", Platform: "Multi", Category: "RPG", BasePrice: decimal.RequireFromString("39.99")},
		{ID: 2, Title: "Pixel Wars", Platform: "Switch", Category: "Strategy", BasePrice: decimal.RequireFromString("29.99"), DiscountPercent: 20},
		{ID: 3, Title: "Dungeon Master", Platform: "PC", Category: "RPG", BasePrice: decimal.RequireFromString("24.99")},
		{ID: 4, Title: "Racing Pro", Platform: "Multi", Category: "Racing", BasePrice: decimal.RequireFromString("19.99")},
		{ID: 5, Title: "Star Drift", Platform: "PS5", Category: "Action", BasePrice: decimal.RequireFromString("69.99"), DiscountPercent: 10},
		{ID: 6, Title: "Puzzle Garden", Platform: "Switch", Category: "Puzzle", BasePrice: decimal.RequireFromString("14.99")},
		{ID: 7, Title: "Iron Legion", Platform: "Xbox", Category: "Action", BasePrice: decimal.RequireFromString("59.99"), DiscountPercent: 25},
	}
}

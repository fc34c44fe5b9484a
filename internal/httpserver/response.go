package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"runplay-store/internal/domain"
	"runplay-store/internal/service/cart"
)

type listingResponse struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Platform        string          `json:"platform"`
	Category        string          `json:"category"`
	BasePrice       decimal.Decimal `json:"basePrice"`
	DiscountPercent int             `json:"discountPercent"`
	EffectivePrice  decimal.Decimal `json:"effectivePrice"`
	Discounted      bool            `json:"discounted"`
}

type listingList struct {
	Count   int               `json:"count"`
	Total   int               `json:"total"`
	Results []listingResponse `json:"results"`
}

type cartEntryResponse struct {
	Listing listingResponse `json:"listing"`
	AddedAt string          `json:"addedAt"`
}

type cartResponse struct {
	Entries []cartEntryResponse `json:"entries"`
	Count   int                 `json:"count"`
	Total   decimal.Decimal     `json:"total"`
	Empty   bool                `json:"empty"`
}

type checkoutResponse struct {
	Message string       `json:"message"`
	Receipt cart.Receipt `json:"receipt"`
}

func toListingResponse(g domain.GameListing) listingResponse {
	return listingResponse{
		ID:              g.ID,
		Title:           g.Title,
		Platform:        g.Platform,
		Category:        g.Category,
		BasePrice:       g.BasePrice,
		DiscountPercent: g.DiscountPercent,
		EffectivePrice:  g.EffectivePrice(),
		Discounted:      g.Discounted(),
	}
}

func toListingList(listings []domain.GameListing, total int) listingList {
	results := make([]listingResponse, 0, len(listings))
	for _, g := range listings {
		results = append(results, toListingResponse(g))
	}
	return listingList{Count: len(results), Total: total, Results: results}
}

func toCartResponse(c *cart.Cart) cartResponse {
	snap := c.Snapshot()
	out := cartResponse{
		Entries: make([]cartEntryResponse, 0, len(snap.Entries)),
		Count:   len(snap.Entries),
		Total:   snap.Total,
		Empty:   len(snap.Entries) == 0,
	}
	for _, e := range snap.Entries {
		out.Entries = append(out.Entries, cartEntryResponse{
			Listing: toListingResponse(e.Listing),
			AddedAt: e.AddedAt.Format(time.RFC3339),
		})
	}
	return out
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidFilter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

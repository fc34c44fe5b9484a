// Package view builds the presentation model for the storefront without
// rendering anything, so the page logic can be tested directly.
package view

import (
	"strings"

	"github.com/shopspring/decimal"
	"runplay-store/internal/domain"
	"runplay-store/internal/service/cart"
	"runplay-store/internal/service/catalog"
)

const (
	EmptyCatalogMessage = "No games match the selected filters."
	EmptyCartMessage    = "Your cart is empty."
	CheckoutMessage     = "Purchase completed successfully!"
)

// The price slider is fixed to this range regardless of the catalog.
var (
	SliderMin = decimal.Zero
	SliderMax = decimal.NewFromInt(100)
)

type ViewModel struct {
	Listings      []ListingView `json:"listings"`
	EmptyCatalog  bool          `json:"emptyCatalog"`
	EmptyMessage  string        `json:"emptyMessage,omitempty"`
	Filters       FilterView    `json:"filters"`
	Cart          CartView      `json:"cart"`
	ContactFields []FieldView   `json:"contactFields"`
}

type ListingView struct {
	ID                int    `json:"id"`
	Title             string `json:"title"`
	Platform          string `json:"platform"`
	Category          string `json:"category"`
	BasePrice         string `json:"basePrice"`
	EffectivePrice    string `json:"effectivePrice"`
	DiscountPercent   int    `json:"discountPercent,omitempty"`
	ShowStrikethrough bool   `json:"showStrikethrough"`
}

type FilterView struct {
	Platforms  []OptionView `json:"platforms"`
	Categories []OptionView `json:"categories"`
	SliderMin  string       `json:"sliderMin"`
	SliderMax  string       `json:"sliderMax"`
	MinPrice   string       `json:"minPrice"`
	MaxPrice   string       `json:"maxPrice"`
}

type OptionView struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

type CartView struct {
	Entries   []CartEntryView `json:"entries"`
	ItemCount int             `json:"itemCount"`
	Total     string          `json:"total"`
	Empty     bool            `json:"empty"`
	Message   string          `json:"message,omitempty"`
}

type CartEntryView struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
}

type FieldView struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

// RenderModel assembles the page state from an already filtered list of
// listings, the catalog facets, the active filters and the session cart.
func RenderModel(listings []domain.GameListing, facets catalog.Facets, filters domain.FilterCriteria, c *cart.Cart) ViewModel {
	vm := ViewModel{
		Listings:      make([]ListingView, 0, len(listings)),
		Filters:       filterView(facets, filters),
		Cart:          cartView(c),
		ContactFields: contactFields(),
	}
	for _, l := range listings {
		vm.Listings = append(vm.Listings, listingView(l))
	}
	if len(vm.Listings) == 0 {
		vm.EmptyCatalog = true
		vm.EmptyMessage = EmptyCatalogMessage
	}
	return vm
}

func FormatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func listingView(l domain.GameListing) ListingView {
	return ListingView{
		ID:                l.ID,
		Title:             l.Title,
		Platform:          l.Platform,
		Category:          l.Category,
		BasePrice:         FormatPrice(l.BasePrice),
		EffectivePrice:    FormatPrice(l.EffectivePrice()),
		DiscountPercent:   l.DiscountPercent,
		ShowStrikethrough: l.Discounted(),
	}
}

func filterView(facets catalog.Facets, filters domain.FilterCriteria) FilterView {
	fv := FilterView{
		Platforms:  options(facets.Platforms, filters.Platforms),
		Categories: options(facets.Categories, filters.Categories),
		SliderMin:  SliderMin.StringFixed(2),
		SliderMax:  SliderMax.StringFixed(2),
		MinPrice:   SliderMin.StringFixed(2),
		MaxPrice:   SliderMax.StringFixed(2),
	}
	if filters.MinPrice != nil {
		fv.MinPrice = filters.MinPrice.StringFixed(2)
	}
	if filters.MaxPrice != nil {
		fv.MaxPrice = filters.MaxPrice.StringFixed(2)
	}
	return fv
}

func options(values, selected []string) []OptionView {
	out := make([]OptionView, 0, len(values))
	for _, v := range values {
		out = append(out, OptionView{Value: v, Selected: isSelected(selected, v)})
	}
	return out
}

func isSelected(selected []string, v string) bool {
	for _, s := range selected {
		if strings.EqualFold(strings.TrimSpace(s), v) {
			return true
		}
	}
	return false
}

func cartView(c *cart.Cart) CartView {
	cv := CartView{Entries: []CartEntryView{}, Total: FormatPrice(decimal.Zero)}
	var snap cart.Snapshot
	if c != nil {
		snap = c.Snapshot()
	}
	if len(snap.Entries) == 0 {
		cv.Empty = true
		cv.Message = EmptyCartMessage
		return cv
	}
	for _, e := range snap.Entries {
		cv.Entries = append(cv.Entries, CartEntryView{
			ID:    e.Listing.ID,
			Title: e.Listing.Title,
			Price: FormatPrice(e.Listing.EffectivePrice()),
		})
	}
	cv.ItemCount = len(snap.Entries)
	cv.Total = FormatPrice(snap.Total)
	return cv
}

func contactFields() []FieldView {
	return []FieldView{
		{Name: "name", Label: "Name", Type: "text"},
		{Name: "email", Label: "Email", Type: "email"},
		{Name: "message", Label: "Message", Type: "textarea"},
	}
}

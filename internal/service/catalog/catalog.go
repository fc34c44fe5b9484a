package catalog

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"runplay-store/internal/domain"
)

// Source supplies listings from an external store such as Postgres.
type Source interface {
	ListAll(ctx context.Context) ([]domain.GameListing, error)
}

// Catalog is the read-only, ordered list of listings for the process.
type Catalog struct {
	listings []domain.GameListing
	byID     map[int]int
}

// Facets describes the values available to the filter controls.
type Facets struct {
	Platforms  []string        `json:"platforms"`
	Categories []string        `json:"categories"`
	MinPrice   decimal.Decimal `json:"minPrice"`
	MaxPrice   decimal.Decimal `json:"maxPrice"`
}

func New(listings []domain.GameListing) (*Catalog, error) {
	c := &Catalog{
		listings: make([]domain.GameListing, 0, len(listings)),
		byID:     make(map[int]int, len(listings)),
	}
	for _, l := range listings {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byID[l.ID]; ok {
			return nil, fmt.Errorf("%w: %d", domain.ErrDuplicateListing, l.ID)
		}
		c.byID[l.ID] = len(c.listings)
		c.listings = append(c.listings, l)
	}
	return c, nil
}

// LoadFrom builds a Catalog from src once; the result is immutable.
func LoadFrom(ctx context.Context, src Source) (*Catalog, error) {
	listings, err := src.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return New(listings)
}

// Load returns the full catalog in source order.
func (c *Catalog) Load() []domain.GameListing {
	out := make([]domain.GameListing, len(c.listings))
	copy(out, c.listings)
	return out
}

// Filter returns the listings matching criteria, preserving source order.
// An empty result is a valid, non-nil empty slice.
func (c *Catalog) Filter(criteria domain.FilterCriteria) []domain.GameListing {
	out := make([]domain.GameListing, 0, len(c.listings))
	for _, l := range c.listings {
		if criteria.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}

func (c *Catalog) Get(id int) (domain.GameListing, error) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.GameListing{}, domain.ErrNotFound
	}
	return c.listings[idx], nil
}

func (c *Catalog) Len() int {
	return len(c.listings)
}

// Facets lists distinct platforms and categories in first-seen order and the
// effective price range of the catalog.
func (c *Catalog) Facets() Facets {
	f := Facets{
		Platforms:  []string{},
		Categories: []string{},
		MinPrice:   decimal.Zero,
		MaxPrice:   decimal.Zero,
	}
	seenPlatform := map[string]bool{}
	seenCategory := map[string]bool{}
	for i, l := range c.listings {
		if l.Platform != "" && !seenPlatform[l.Platform] {
			seenPlatform[l.Platform] = true
			f.Platforms = append(f.Platforms, l.Platform)
		}
		if l.Category != "" && !seenCategory[l.Category] {
			seenCategory[l.Category] = true
			f.Categories = append(f.Categories, l.Category)
		}
		p := l.EffectivePrice()
		if i == 0 || p.LessThan(f.MinPrice) {
			f.MinPrice = p
		}
		if i == 0 || p.GreaterThan(f.MaxPrice) {
			f.MaxPrice = p
		}
	}
	return f
}

package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"runplay-store/internal/domain"
)

type stubSource struct {
	listings []domain.GameListing
	err      error
}

func (s *stubSource) ListAll(_ context.Context) ([]domain.GameListing, error) {
	return s.listings, s.err
}

func mustCatalog(t *testing.T, listings []domain.GameListing) *Catalog {
	t.Helper()
	c, err := New(listings)
	require.NoError(t, err)
	return c
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func ids(listings []domain.GameListing) []int {
	out := make([]int, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestCatalogLoadPreservesOrder(t *testing.T) {
	c := mustCatalog(t, Seed())
	got := c.Load()
	assert.Equal(t, ids(Seed()), ids(got))

	got[0].Title = "mutated"
	assert.NotEqual(t, "mutated", c.Load()[0].Title, "Load must return a copy")
}

func TestCatalogFilterEmptyCriteriaReturnsAll(t *testing.T) {
	c := mustCatalog(t, Seed())
	assert.Equal(t, ids(c.Load()), ids(c.Filter(domain.FilterCriteria{})))
}

func TestCatalogFilterByPlatform(t *testing.T) {
	c := mustCatalog(t, []domain.GameListing{
		{ID: 1, Title: "CyberQuest", Platform: "Multi", Category: "RPG", BasePrice: decimal.RequireFromString("39.99")},
		{ID: 2, Title: "Star Drift", Platform: "PS5", Category: "Action", BasePrice: decimal.RequireFromString("69.99"), DiscountPercent: 10},
	})
	got := c.Filter(domain.FilterCriteria{Platforms: []string{"PS5"}})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
	assert.True(t, got[0].EffectivePrice().Equal(decimal.RequireFromString("62.99")), "got %s", got[0].EffectivePrice())
}

func TestCatalogFilterCombinedAndEmpty(t *testing.T) {
	c := mustCatalog(t, Seed())

	got := c.Filter(domain.FilterCriteria{Categories: []string{"RPG"}, MaxPrice: decPtr("30")})
	require.Len(t, got, 1)
	assert.Equal(t, "Dungeon Master", got[0].Title)

	none := c.Filter(domain.FilterCriteria{Platforms: []string{"Dreamcast"}})
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCatalogGet(t *testing.T) {
	c := mustCatalog(t, Seed())
	got, err := c.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "Dungeon Master", got.Title)

	_, err = c.Get(999)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
}

func TestNewRejectsInvalidAndDuplicates(t *testing.T) {
	_, err := New([]domain.GameListing{
		{ID: 1, Title: "A", BasePrice: decimal.RequireFromString("1")},
		{ID: 1, Title: "B", BasePrice: decimal.RequireFromString("2")},
	})
	assert.True(t, errors.Is(err, domain.ErrDuplicateListing), "got %v", err)

	_, err = New([]domain.GameListing{{ID: 1, Title: "", BasePrice: decimal.RequireFromString("1")}})
	assert.True(t, errors.Is(err, domain.ErrInvalidListing), "got %v", err)

	_, err = New([]domain.GameListing{{ID: 1, Title: "X", BasePrice: decimal.RequireFromString("19.995")}})
	assert.True(t, errors.Is(err, domain.ErrInvalidListing), "got %v", err)
}

func TestSeedEffectiveNeverAboveBase(t *testing.T) {
	for _, l := range mustCatalog(t, Seed()).Load() {
		assert.True(t, l.EffectivePrice().LessThanOrEqual(l.BasePrice), "id %d", l.ID)
	}
}

func TestFacets(t *testing.T) {
	f := mustCatalog(t, Seed()).Facets()
	assert.Equal(t, []string{"Multi", "Switch", "PC", "PS5", "Xbox"}, f.Platforms)
	assert.Equal(t, []string{"RPG", "Strategy", "Racing", "Action", "Puzzle"}, f.Categories)
	assert.True(t, f.MinPrice.Equal(decimal.RequireFromString("14.99")), "min %s", f.MinPrice)
	assert.True(t, f.MaxPrice.Equal(decimal.RequireFromString("62.99")), "max %s", f.MaxPrice)
}

func TestFacetsEmptyCatalog(t *testing.T) {
	f := mustCatalog(t, nil).Facets()
	assert.Empty(t, f.Platforms)
	assert.True(t, f.MinPrice.IsZero())
	assert.True(t, f.MaxPrice.IsZero())
}

func TestLoadFrom(t *testing.T) {
	c, err := LoadFrom(context.Background(), &stubSource{listings: Seed()})
	require.NoError(t, err)
	assert.Equal(t, len(Seed()), c.Len())

	_, err = LoadFrom(context.Background(), &stubSource{err: errors.New("boom")})
	require.Error(t, err)
	assert.Equal(t, "load catalog: boom", err.Error())
}

package seed

import (
	"context"
	"fmt"

	"runplay-store/internal/domain"
)

type gameReader interface {
	GetByID(ctx context.Context, id int) (*domain.GameListing, error)
}

type gameWriter interface {
	Upsert(ctx context.Context, g domain.GameListing, position int) error
}

// Apply writes the listings in order. It is idempotent because rows are
// upserted by id.
func Apply(ctx context.Context, repo gameWriter, listings []domain.GameListing) (int, error) {
	for i, g := range listings {
		if err := repo.Upsert(ctx, g, i); err != nil {
			return i, fmt.Errorf("upsert game %d: %w", g.ID, err)
		}
	}
	return len(listings), nil
}

// Verify reads every listing back and reports the first one whose stored
// form differs, such as a price that lost precision.
func Verify(ctx context.Context, repo gameReader, listings []domain.GameListing) error {
	for _, want := range listings {
		got, err := repo.GetByID(ctx, want.ID)
		if err != nil {
			return fmt.Errorf("read game %d: %w", want.ID, err)
		}
		if got.Title != want.Title || got.Platform != want.Platform || got.Category != want.Category ||
			!got.BasePrice.Equal(want.BasePrice) || got.DiscountPercent != want.DiscountPercent {
			return fmt.Errorf("game %d stored as %+v, want %+v", want.ID, *got, want)
		}
	}
	return nil
}

package game

import (
	"context"

	"runplay-store/internal/domain"
)

type Repository interface {
	ListAll(ctx context.Context) ([]domain.GameListing, error)
	GetByID(ctx context.Context, id int) (*domain.GameListing, error)
	Upsert(ctx context.Context, g domain.GameListing, position int) error
}

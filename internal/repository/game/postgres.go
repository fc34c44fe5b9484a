package game

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"runplay-store/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.GameListing, error) {
	const q = `
SELECT id, title, platform, category, base_price_cents, discount_percent
FROM games
ORDER BY position ASC, id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("game repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	result := []domain.GameListing{}
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("game repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("game repo: list count=%d", len(result))
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.GameListing, error) {
	const q = `
SELECT id, title, platform, category, base_price_cents, discount_percent
FROM games
WHERE id = $1
`
	g, err := scanGame(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("game repo: get id=%d not found", id)
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("game repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &g, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, g domain.GameListing, position int) error {
	const q = `
INSERT INTO games (id, title, platform, category, base_price_cents, discount_percent, position)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    title = EXCLUDED.title,
    platform = EXCLUDED.platform,
    category = EXCLUDED.category,
    base_price_cents = EXCLUDED.base_price_cents,
    discount_percent = EXCLUDED.discount_percent,
    position = EXCLUDED.position
`
	if err := g.Validate(); err != nil {
		return err
	}
	_, err := r.pool.Exec(ctx, q, g.ID, g.Title, g.Platform, g.Category, ToCents(g.BasePrice), g.DiscountPercent, position)
	if err != nil {
		r.logger.Printf("game repo: upsert id=%d error=%v", g.ID, err)
		return err
	}
	r.logger.Printf("game repo: upserted id=%d title=%s", g.ID, g.Title)
	return nil
}

// ToCents converts a price to whole cents, rounding half away from zero.
func ToCents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart()
}

// FromCents is the inverse of ToCents.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func scanGame(row pgx.Row) (domain.GameListing, error) {
	var (
		g     domain.GameListing
		cents int64
	)
	if err := row.Scan(&g.ID, &g.Title, &g.Platform, &g.Category, &cents, &g.DiscountPercent); err != nil {
		return domain.GameListing{}, err
	}
	g.BasePrice = FromCents(cents)
	return g, nil
}

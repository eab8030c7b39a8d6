package repository

import (
	"context"
	"fmt"

	"github.com/actuallystonmai/stream-aggregator/internal/catalog"
	"github.com/jackc/pgx/v5"
)

// DB is the subset of *pgxpool.Pool the repository uses.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	pool DB
}

func NewRepository(pool DB) *Repository {
	return &Repository{pool: pool}
}

// Load reads the whole catalog table. It satisfies catalog.Source.
func (r *Repository) Load(ctx context.Context) (*catalog.Table, error) {
	platforms, err := r.GetPlatforms(ctx)
	if err != nil {
		return nil, err
	}
	titles, err := r.GetTitles(ctx)
	if err != nil {
		return nil, err
	}

	t := &catalog.Table{Platforms: platforms, Titles: titles}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("catalog from database: %w", err)
	}
	return t, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/actuallystonmai/stream-aggregator/internal/catalog"
)

// Get platforms in catalog order
func (r *Repository) GetPlatforms(ctx context.Context) ([]catalog.PlatformEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, label, aliases FROM platforms ORDER BY position, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query platforms: %w", err)
	}
	defer rows.Close()

	var out []catalog.PlatformEntry
	for rows.Next() {
		var p catalog.PlatformEntry
		if err := rows.Scan(&p.ID, &p.Label, &p.Aliases); err != nil {
			return nil, fmt.Errorf("scan platform: %w", err)
		}
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate platforms: %w", err)
	}
	return out, nil
}

// Count platforms
func (r *Repository) CountPlatforms(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM platforms`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count platforms: %w", err)
	}
	return total, nil
}

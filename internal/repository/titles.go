package repository

import (
	"context"
	"fmt"

	"github.com/actuallystonmai/stream-aggregator/internal/catalog"
)

type titleRow struct {
	platformID string
	entry      catalog.TitleEntry
}

// GetTitles returns titles grouped by platform, in insertion order.
func (r *Repository) GetTitles(ctx context.Context) ([]catalog.PlatformTitles, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT platform_id, title, genre, type, year
		FROM catalog_titles
		ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query catalog titles: %w", err)
	}
	defer rows.Close()

	var items []titleRow
	for rows.Next() {
		var row titleRow
		err := rows.Scan(&row.platformID, &row.entry.Title, &row.entry.Genre, &row.entry.Type, &row.entry.Year)
		if err != nil {
			return nil, fmt.Errorf("scan catalog title: %w", err)
		}
		items = append(items, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over catalog titles: %w", err)
	}
	return groupTitles(items), nil
}

// groupTitles folds rows into per-platform groups. Each platform's group sits
// where that platform first appears.
func groupTitles(rows []titleRow) []catalog.PlatformTitles {
	var groups []catalog.PlatformTitles
	pos := make(map[string]int)
	for _, row := range rows {
		i, ok := pos[row.platformID]
		if !ok {
			i = len(groups)
			pos[row.platformID] = i
			groups = append(groups, catalog.PlatformTitles{Platform: row.platformID})
		}
		groups[i].Entries = append(groups[i].Entries, row.entry)
	}
	return groups
}

// Count catalog titles
func (r *Repository) CountTitles(ctx context.Context) (int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM catalog_titles`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count catalog titles: %w", err)
	}
	return total, nil
}

package seeds

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/actuallystonmai/stream-aggregator/internal/catalog"
	"github.com/jackc/pgx/v5/pgconn"
)

type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Setup replaces the stored catalog with t.
func Setup(ctx context.Context, db Execer, t *catalog.Table) error {
	// Truncate existing data before insert
	log.Println("[seed] truncating existing catalog")
	if _, err := db.Exec(ctx, `TRUNCATE catalog_titles, platforms RESTART IDENTITY`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Printf("[seed] inserting %d platforms", len(t.Platforms))
	if err := exec(ctx, db, platformInsert(t.Platforms)); err != nil {
		return fmt.Errorf("seed platforms: %w", err)
	}

	log.Printf("[seed] inserting %d titles", t.TitleCount())
	if err := exec(ctx, db, titleInsert(t.Titles)); err != nil {
		return fmt.Errorf("seed titles: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

type statement struct {
	query string
	args  []any
}

func exec(ctx context.Context, db Execer, st statement) error {
	if st.query == "" {
		return nil
	}
	_, err := db.Exec(ctx, st.query, st.args...)
	return err
}

func platformInsert(platforms []catalog.PlatformEntry) statement {
	rows := []string{}
	args := []any{}

	for i, p := range platforms {
		aliases := p.Aliases
		if aliases == nil {
			aliases = []string{}
		}
		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, p.ID, p.Label, aliases, i)
	}

	if len(rows) == 0 {
		return statement{}
	}
	return statement{
		query: "INSERT INTO platforms (id, label, aliases, position) VALUES " + strings.Join(rows, ", "),
		args:  args,
	}
}

func titleInsert(groups []catalog.PlatformTitles) statement {
	rows := []string{}
	args := []any{}

	for _, g := range groups {
		for _, e := range g.Entries {
			base := len(args)
			rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5))
			args = append(args, g.Platform, e.Title, e.Genre, e.Type, e.Year)
		}
	}

	if len(rows) == 0 {
		return statement{}
	}
	return statement{
		query: "INSERT INTO catalog_titles (platform_id, title, genre, type, year) VALUES " +
			strings.Join(rows, ", "),
		args: args,
	}
}

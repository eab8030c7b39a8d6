package search

import (
	"strings"

	"github.com/actuallystonmai/stream-aggregator/internal/domain"
)

// filter holds the normalized criteria of one request. Every criterion is a
// plain predicate, so the order they are applied in does not matter.
type filter struct {
	query     string
	platforms map[string]bool
	genre     string
	typ       string
}

func newFilter(query string, platforms []string, genre, typ string) filter {
	f := filter{
		query: query,
		genre: strings.TrimSpace(genre),
		typ:   strings.TrimSpace(typ),
	}
	if ps := nonEmpty(platforms); len(ps) > 0 {
		f.platforms = make(map[string]bool, len(ps))
		for _, p := range ps {
			f.platforms[p] = true
		}
	}
	return f
}

func (f filter) match(item domain.ContentItem) bool {
	return f.matchQuery(item) && f.matchPlatform(item) && f.matchGenre(item) && f.matchType(item)
}

func (f filter) matchQuery(item domain.ContentItem) bool {
	if f.query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Title), f.query) ||
		strings.Contains(item.PlatformID, f.query) ||
		strings.Contains(strings.ToLower(item.Genre), f.query)
}

func (f filter) matchPlatform(item domain.ContentItem) bool {
	return f.platforms == nil || f.platforms[item.PlatformID]
}

func (f filter) matchGenre(item domain.ContentItem) bool {
	return f.genre == "" || strings.EqualFold(item.Genre, f.genre)
}

// type is compared case-sensitively
func (f filter) matchType(item domain.ContentItem) bool {
	return f.typ == "" || item.Type == f.typ
}

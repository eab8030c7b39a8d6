package index

import (
	"strings"

	"github.com/actuallystonmai/stream-aggregator/internal/catalog"
	"github.com/actuallystonmai/stream-aggregator/internal/domain"
)

// Index is the immutable search corpus. It is built once at startup and
// shared read-only between requests.
type Index struct {
	items []domain.ContentItem
}

// New builds an index from the title groups of t.
func New(t *catalog.Table) *Index {
	return &Index{items: Build(t.Titles)}
}

// Build flattens the title groups into content items, in table order.
// The first occurrence of an id wins; later duplicates are dropped.
func Build(groups []catalog.PlatformTitles) []domain.ContentItem {
	seen := make(map[string]bool)
	var items []domain.ContentItem

	for _, group := range groups {
		for _, entry := range group.Entries {
			id := ItemID(group.Platform, entry.Title)
			if seen[id] {
				continue
			}
			seen[id] = true

			item := domain.ContentItem{
				ID:         id,
				Title:      entry.Title,
				PlatformID: group.Platform,
				Genre:      entry.Genre,
				Type:       entry.Type,
			}
			if entry.Year != nil {
				year := *entry.Year
				item.Year = &year
			}
			items = append(items, item)
		}
	}
	return items
}

func ItemID(platformID, title string) string {
	return platformID + "_" + normalize(title)
}

// normalize lowercases s and drops everything outside [a-z0-9].
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Items returns the corpus in build order. Callers must not modify it.
func (x *Index) Items() []domain.ContentItem {
	return x.items
}

func (x *Index) Len() int {
	return len(x.items)
}

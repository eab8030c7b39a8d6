package search

import (
	"sort"
	"strings"
	"time"

	"github.com/actuallystonmai/stream-aggregator/internal/domain"
)

const (
	DefaultLimit = 20
	MinLimit     = 1
	MaxLimit     = 50
)

// Corpus is the read-only item collection searched over.
type Corpus interface {
	Items() []domain.ContentItem
}

// PlatformLookup resolves a platform id to its display label, falling back
// to the id itself when the platform is unknown.
type PlatformLookup interface {
	Label(id string) string
}

type Engine struct {
	corpus    Corpus
	platforms PlatformLookup
}

func NewEngine(corpus Corpus, platforms PlatformLookup) *Engine {
	return &Engine{corpus: corpus, platforms: platforms}
}

// ClampLimit maps a requested limit onto [MinLimit, MaxLimit]. Zero means
// unspecified and yields DefaultLimit.
func ClampLimit(limit int) int {
	if limit == 0 {
		return DefaultLimit
	}
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Validate reports ErrMissingQuery when q has nothing to search by.
func Validate(q domain.SearchQuery) error {
	if strings.TrimSpace(q.Query) == "" && len(nonEmpty(q.Platforms)) == 0 && strings.TrimSpace(q.Genre) == "" {
		return domain.ErrMissingQuery
	}
	return nil
}

func (e *Engine) Search(q domain.SearchQuery) (*domain.SearchResult, error) {
	if err := Validate(q); err != nil {
		return nil, err
	}
	start := time.Now()

	query := strings.ToLower(strings.TrimSpace(q.Query))
	f := newFilter(query, q.Platforms, q.Genre, q.Type)

	var scored []domain.ScoredResult
	for _, item := range e.corpus.Items() {
		if !f.match(item) {
			continue
		}
		scored = append(scored, domain.ScoredResult{
			ContentItem: item,
			MatchScore:  matchScore(query, item.Title),
		})
	}

	// Stable so equal scores keep corpus order
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	total := len(scored)
	if limit := ClampLimit(q.Limit); len(scored) > limit {
		scored = scored[:limit]
	}

	for i := range scored {
		scored[i].Platform = e.label(scored[i].PlatformID)
	}
	if scored == nil {
		scored = []domain.ScoredResult{}
	}

	return &domain.SearchResult{
		Results:      scored,
		TotalCount:   total,
		SearchTimeMs: float64(time.Since(start).Microseconds()) / 1000,
	}, nil
}

func (e *Engine) label(platformID string) string {
	if e.platforms == nil {
		return platformID
	}
	return e.platforms.Label(platformID)
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

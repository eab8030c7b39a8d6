package search

import (
	"errors"
	"fmt"
	"testing"

	"github.com/actuallystonmai/stream-aggregator/internal/domain"
)

type sliceCorpus []domain.ContentItem

func (c sliceCorpus) Items() []domain.ContentItem { return c }

type labels map[string]string

func (l labels) Label(id string) string {
	if label, ok := l[id]; ok {
		return label
	}
	return id
}

func testCorpus() sliceCorpus {
	return sliceCorpus{
		{ID: "max_batmanbegins", Title: "Batman Begins", PlatformID: "max", Genre: "Movies", Type: "movie"},
		{ID: "primevideo_thebatman", Title: "The Batman", PlatformID: "primevideo", Genre: "Movies", Type: "movie"},
		{ID: "max_batman", Title: "Batman", PlatformID: "max", Genre: "Premium", Type: "series"},
		{ID: "netflix_thecrown", Title: "The Crown", PlatformID: "netflix", Genre: "Premium", Type: "series"},
		{ID: "netflix_cocomelon", Title: "Cocomelon", PlatformID: "netflix", Genre: "Kids", Type: "series"},
		{ID: "hulu_bluey", Title: "Bluey", PlatformID: "hulu", Genre: "Kids", Type: "series"},
		{ID: "crackle_kidsclub", Title: "Kids Club", PlatformID: "crackle", Genre: "Basic", Type: "live"},
	}
}

func newTestEngine() *Engine {
	return NewEngine(testCorpus(), labels{"max": "Max", "primevideo": "Prime Video", "netflix": "Netflix", "hulu": "Hulu"})
}

func TestSearchScoring(t *testing.T) {
	res, err := newTestEngine().Search(domain.SearchQuery{Query: "BATMAN"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if res.TotalCount != 3 {
		t.Fatalf("expected 3 matches, got %d", res.TotalCount)
	}

	want := []struct {
		id    string
		score float64
	}{
		{"max_batman", 1.0},
		{"max_batmanbegins", 0.8},
		{"primevideo_thebatman", 0.5},
	}
	for i, w := range want {
		if res.Results[i].ID != w.id {
			t.Errorf("position %d: expected %s, got %s", i, w.id, res.Results[i].ID)
		}
		if res.Results[i].MatchScore != w.score {
			t.Errorf("%s: expected score %.1f, got %f", w.id, w.score, res.Results[i].MatchScore)
		}
	}
}

func TestSearchMatchesPlatformAndGenre(t *testing.T) {
	e := newTestEngine()

	res, err := e.Search(domain.SearchQuery{Query: "netfl"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.TotalCount != 2 {
		t.Errorf("expected platform id match on 2 items, got %d", res.TotalCount)
	}

	res, err = e.Search(domain.SearchQuery{Query: "kids"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	// two by genre, one by title prefix
	if res.TotalCount != 3 {
		t.Fatalf("expected 3 matches, got %d", res.TotalCount)
	}
	if res.Results[0].ID != "crackle_kidsclub" || res.Results[0].MatchScore != 0.8 {
		t.Errorf("expected title prefix match first, got %s (%f)", res.Results[0].ID, res.Results[0].MatchScore)
	}
}

func TestSearchFiltersOnly(t *testing.T) {
	res, err := newTestEngine().Search(domain.SearchQuery{Genre: "kids"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.TotalCount != 2 {
		t.Fatalf("expected 2 kids items, got %d", res.TotalCount)
	}
	for _, r := range res.Results {
		if r.MatchScore != 0.5 {
			t.Errorf("%s: expected flat 0.5, got %f", r.ID, r.MatchScore)
		}
	}
	// corpus order is kept among equal scores
	if res.Results[0].ID != "netflix_cocomelon" || res.Results[1].ID != "hulu_bluey" {
		t.Errorf("unexpected order: %s, %s", res.Results[0].ID, res.Results[1].ID)
	}
}

func TestSearchTypeIsCaseSensitive(t *testing.T) {
	e := newTestEngine()

	res, err := e.Search(domain.SearchQuery{Platforms: []string{"netflix"}, Type: "series"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.TotalCount != 2 {
		t.Errorf("expected 2, got %d", res.TotalCount)
	}

	res, err = e.Search(domain.SearchQuery{Platforms: []string{"netflix"}, Type: "Series"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.TotalCount != 0 {
		t.Errorf("expected no match for Series, got %d", res.TotalCount)
	}
}

func TestSearchUnknownGenreIsEmpty(t *testing.T) {
	res, err := newTestEngine().Search(domain.SearchQuery{Genre: "Documentary"})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.TotalCount != 0 || len(res.Results) != 0 {
		t.Errorf("expected empty result, got %d", res.TotalCount)
	}
	if res.Results == nil {
		t.Error("results should be an empty slice, not nil")
	}
}

func TestSearchMissingQuery(t *testing.T) {
	tests := []domain.SearchQuery{
		{},
		{Query: "   "},
		{Type: "movie"},
		{Platforms: []string{"", " "}},
		{Limit: 10},
	}
	for _, q := range tests {
		_, err := newTestEngine().Search(q)
		if !errors.Is(err, domain.ErrMissingQuery) {
			t.Errorf("%+v: expected ErrMissingQuery, got %v", q, err)
		}
	}
}

func TestSearchLimit(t *testing.T) {
	var corpus sliceCorpus
	for i := 0; i < 80; i++ {
		corpus = append(corpus, domain.ContentItem{
			ID: fmt.Sprintf("tubi_show%d", i), Title: fmt.Sprintf("Show %d", i),
			PlatformID: "tubi", Genre: "Basic", Type: "series",
		})
	}
	e := NewEngine(corpus, nil)

	tests := []struct {
		limit int
		want  int
	}{
		{0, DefaultLimit},
		{-5, 1},
		{7, 7},
		{500, MaxLimit},
	}
	for _, tt := range tests {
		res, err := e.Search(domain.SearchQuery{Query: "show", Limit: tt.limit})
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(res.Results) != tt.want {
			t.Errorf("limit %d: expected %d results, got %d", tt.limit, tt.want, len(res.Results))
		}
		if res.TotalCount != 80 {
			t.Errorf("limit %d: totalCount should be 80, got %d", tt.limit, res.TotalCount)
		}
	}
}

func TestSearchPlatformLabel(t *testing.T) {
	res, err := newTestEngine().Search(domain.SearchQuery{Platforms: []string{"crackle", "hulu"}})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	got := map[string]string{}
	for _, r := range res.Results {
		got[r.PlatformID] = r.Platform
	}
	if got["hulu"] != "Hulu" {
		t.Errorf("expected Hulu label, got %q", got["hulu"])
	}
	if got["crackle"] != "crackle" {
		t.Errorf("unknown platform should fall back to id, got %q", got["crackle"])
	}
}

func TestFilterOrderDoesNotMatter(t *testing.T) {
	corpus := testCorpus()
	f := newFilter("", []string{"netflix", "hulu"}, "KIDS", "")

	platformFirst := keep(keep(corpus, f.matchPlatform), f.matchGenre)
	genreFirst := keep(keep(corpus, f.matchGenre), f.matchPlatform)

	if len(platformFirst) != 2 || len(platformFirst) != len(genreFirst) {
		t.Fatalf("expected 2 survivors both ways, got %d and %d", len(platformFirst), len(genreFirst))
	}
	for i := range platformFirst {
		if platformFirst[i].ID != genreFirst[i].ID {
			t.Errorf("mismatch at %d: %s vs %s", i, platformFirst[i].ID, genreFirst[i].ID)
		}
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	e := newTestEngine()
	q := domain.SearchQuery{Genre: "premium"}

	first, _ := e.Search(q)
	second, _ := e.Search(q)
	for i := range first.Results {
		if first.Results[i].ID != second.Results[i].ID {
			t.Fatalf("order changed at %d", i)
		}
	}
}

func TestMatchScore(t *testing.T) {
	tests := []struct {
		query, title string
		want         float64
	}{
		{"", "Anything", 0.5},
		{"dune", "Dune", 1.0},
		{"the", "The Bear", 0.8},
		{"bear", "The Bear", 0.5},
	}
	for _, tt := range tests {
		if got := matchScore(tt.query, tt.title); got != tt.want {
			t.Errorf("matchScore(%q, %q) = %f, want %f", tt.query, tt.title, got, tt.want)
		}
	}
}

func keep(items []domain.ContentItem, pred func(domain.ContentItem) bool) []domain.ContentItem {
	var out []domain.ContentItem
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

package platform

import (
	"testing"

	"github.com/actuallystonmai/stream-aggregator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return NewCatalog([]domain.Platform{
		{ID: "netflix", Label: "Netflix"},
		{ID: "youtube", Label: "YouTube"},
		{ID: "youtubetv", Label: "YouTube TV"},
		{ID: "max", Label: "Max", Aliases: []string{"hbo", "hbo max"}},
		{ID: "disneyplus", Label: "Disney+", Aliases: []string{"disney"}},
	})
}

func ids(ps []domain.Platform) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestByID(t *testing.T) {
	c := testCatalog()

	p, ok := c.ByID("netflix")
	require.True(t, ok)
	assert.Equal(t, "Netflix", p.Label)

	_, ok = c.ByID("Netflix")
	assert.False(t, ok)
}

func TestLabelFallsBackToID(t *testing.T) {
	c := testCatalog()
	assert.Equal(t, "Disney+", c.Label("disneyplus"))
	assert.Equal(t, "crackle", c.Label("crackle"))
}

func TestSearch(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		text string
		want []string
	}{
		{"netflix", []string{"netflix"}},
		{"Netflix", []string{"netflix"}},
		{"hbo", []string{"max"}},
		{"disney plus", []string{"disneyplus"}},
		{"you", []string{"youtube", "youtubetv"}},
		{"youtube tv", []string{"youtubetv", "youtube"}},
		{"netflix please", []string{"netflix"}},
		{"open hbo max now", []string{"max"}},
		{"maximum", nil},
		{"tv", nil},
		{"yo", nil},
		{"max", []string{"max"}},
		{"netflixplease", nil},
		{"", nil},
		{"  !? ", nil},
		{"xyzzy nonsense", nil},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := c.Search(tt.text)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestNewCatalogSkipsDuplicateIDs(t *testing.T) {
	c := NewCatalog([]domain.Platform{
		{ID: "hulu", Label: "Hulu"},
		{ID: "hulu", Label: "Hulu Again"},
	})
	require.Len(t, c.All(), 1)
	assert.Equal(t, "Hulu", c.Label("hulu"))
}

func TestWordSpans(t *testing.T) {
	spans := wordSpans("Open HBO-Max, now")
	for _, want := range []string{"open", "hbo", "max", "now", "hbomax", "openhbomax", "openhbomaxnow"} {
		assert.True(t, spans[want], "missing span %q", want)
	}
	assert.False(t, spans["bomax"])
	assert.Empty(t, wordSpans("  !? "))
}

package platform

import (
	"sort"
	"strings"

	"github.com/actuallystonmai/stream-aggregator/internal/domain"
)

const (
	scoreExact    = 1.0
	scorePrefix   = 0.8
	scoreContains = 0.6
	scoreWithin   = 0.4

	// shorter fragments ("tv", "a") only match a name exactly
	minFragment = 3
	// longest name in words, e.g. "amazon prime video"
	maxSpanWords = 4
)

// Catalog resolves platform ids and free text to platforms. It is read-only
// after construction.
type Catalog struct {
	platforms []domain.Platform
	byID      map[string]int
	// normalized id, label and aliases per platform
	names [][]string
}

func NewCatalog(platforms []domain.Platform) *Catalog {
	c := &Catalog{
		platforms: make([]domain.Platform, 0, len(platforms)),
		byID:      make(map[string]int, len(platforms)),
	}
	for _, p := range platforms {
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.byID[p.ID] = len(c.platforms)
		c.platforms = append(c.platforms, p)

		names := []string{normalize(p.ID), normalize(p.Label)}
		for _, a := range p.Aliases {
			names = append(names, normalize(a))
		}
		c.names = append(c.names, names)
	}
	return c
}

func (c *Catalog) ByID(id string) (domain.Platform, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Platform{}, false
	}
	return c.platforms[i], true
}

// Label returns the display label for id, or id itself when unknown.
func (c *Catalog) Label(id string) string {
	if p, ok := c.ByID(id); ok && p.Label != "" {
		return p.Label
	}
	return id
}

func (c *Catalog) All() []domain.Platform {
	out := make([]domain.Platform, len(c.platforms))
	copy(out, c.platforms)
	return out
}

type match struct {
	idx   int
	score float64
}

// Search returns the platforms matching text, best match first. Ties keep
// catalog order.
func (c *Catalog) Search(text string) []domain.Platform {
	q := normalize(text)
	if q == "" {
		return nil
	}
	spans := wordSpans(text)

	var matches []match
	for i, names := range c.names {
		if s := scoreNames(q, spans, names); s > 0 {
			matches = append(matches, match{idx: i, score: s})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]domain.Platform, 0, len(matches))
	for _, m := range matches {
		out = append(out, c.platforms[m.idx])
	}
	return out
}

func scoreNames(q string, spans map[string]bool, names []string) float64 {
	best := 0.0
	for _, name := range names {
		if name == "" {
			continue
		}
		var s float64
		switch {
		case name == q:
			s = scoreExact
		case len(q) < minFragment:
			// too short to match fuzzily
		case strings.HasPrefix(name, q):
			s = scorePrefix
		case strings.Contains(name, q):
			s = scoreContains
		case spans[name]:
			s = scoreWithin
		}
		if s > best {
			best = s
		}
	}
	return best
}

// wordSpans returns every run of consecutive words in text, normalized, so
// "open hbo max" yields "open", "hbo", "max", "openhbo", "hbomax" and so on.
// Names are then only found on word boundaries.
func wordSpans(text string) map[string]bool {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'))
	})
	spans := make(map[string]bool)
	for i := range words {
		joined := ""
		for j := i; j < len(words) && j < i+maxSpanWords; j++ {
			joined += normalize(words[j])
			if joined != "" {
				spans[joined] = true
			}
		}
	}
	return spans
}

func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

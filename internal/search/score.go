package search

import (
	"math"
	"strings"
)

const (
	baseScore   = 0.5
	prefixBoost = 0.3
	exactBoost  = 0.2
	maxScore    = 1.0
)

// matchScore ranks a surviving item against the lowercased query. Without a
// query every item scores baseScore.
func matchScore(query, title string) float64 {
	score := baseScore
	if query == "" {
		return score
	}

	t := strings.ToLower(title)
	if strings.HasPrefix(t, query) {
		score += prefixBoost
		if t == query {
			score += exactBoost
		}
	}

	// 0.5 + 0.3 + 0.2 lands a hair off 1.0 in floating point
	return math.Min(maxScore, math.Round(score*1000)/1000)
}

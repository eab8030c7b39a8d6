package domain

type ScoredResult struct {
	ContentItem
	Platform   string  `json:"platform"`
	MatchScore float64 `json:"matchScore"`
}

// SearchQuery is one search request as received at the boundary.
// Limit is clamped by the engine, so any value is accepted here.
type SearchQuery struct {
	Query     string
	Platforms []string
	Genre     string
	Type      string
	Limit     int
}

type SearchResult struct {
	Results      []ScoredResult `json:"results"`
	TotalCount   int            `json:"totalCount"`
	SearchTimeMs float64        `json:"searchTimeMs"`
}

type SearchOutcome struct {
	Result   *SearchResult
	CacheHit bool
}

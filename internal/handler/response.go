package handler

import "github.com/actuallystonmai/stream-aggregator/internal/domain"

type SearchFilters struct {
	Platforms []string `json:"platforms"`
	Genre     string   `json:"genre,omitempty"`
	Type      string   `json:"type,omitempty"`
	Limit     int      `json:"limit"`
}

type SearchResponse struct {
	Query        string                `json:"query"`
	Results      []domain.ScoredResult `json:"results"`
	TotalCount   int                   `json:"totalCount"`
	SearchTimeMs float64               `json:"searchTimeMs"`
	Filters      SearchFilters         `json:"filters"`
	CacheHit     bool                  `json:"cacheHit"`
}

type CommandRequest struct {
	Command *string `json:"command"`
}

type CommandResponse struct {
	Command string              `json:"command"`
	Parsed  domain.ParsedIntent `json:"parsed"`
}

type PlatformsResponse struct {
	Platforms []domain.Platform `json:"platforms"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Status int    `json:"status"`
}

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/actuallystonmai/stream-aggregator/internal/domain"
	"github.com/actuallystonmai/stream-aggregator/internal/search"
)

// GET /api/search?q=&platforms=&genre=&type=&limit=
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	// Limit is clamped, never rejected; junk means unspecified
	limit := 0
	if limitStr := params.Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	q := domain.SearchQuery{
		Query:     params.Get("q"),
		Platforms: splitList(params["platforms"]),
		Genre:     params.Get("genre"),
		Type:      params.Get("type"),
		Limit:     limit,
	}

	out, err := h.service.Search(r.Context(), q)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Query:        strings.TrimSpace(q.Query),
		Results:      out.Result.Results,
		TotalCount:   out.Result.TotalCount,
		SearchTimeMs: out.Result.SearchTimeMs,
		Filters: SearchFilters{
			Platforms: q.Platforms,
			Genre:     q.Genre,
			Type:      q.Type,
			Limit:     search.ClampLimit(limit),
		},
		CacheHit: out.CacheHit,
	})
}

// splitList accepts both platforms=a,b and repeated platforms=a&platforms=b.
func splitList(values []string) []string {
	out := []string{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/actuallystonmai/stream-aggregator/internal/domain"
)

const maxCommandBody = 16 << 10

// POST /api/search
func (h *Handler) ParseCommand(w http.ResponseWriter, r *http.Request) {
	var req CommandRequest
	body := http.MaxBytesReader(w, r.Body, maxCommandBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil || req.Command == nil {
		writeServiceError(w, domain.ErrMissingCommand)
		return
	}

	parsed, err := h.service.ParseCommand(r.Context(), *req.Command)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CommandResponse{
		Command: *req.Command,
		Parsed:  parsed,
	})
}

// GET /api/platforms
func (h *Handler) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PlatformsResponse{Platforms: h.service.Platforms()})
}

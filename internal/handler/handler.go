package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/actuallystonmai/stream-aggregator/internal/domain"
	"github.com/actuallystonmai/stream-aggregator/internal/service"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeMissingQuery   = "MISSING_QUERY"
	CodeMissingCommand = "MISSING_COMMAND"
	CodeRateLimited    = "RATE_LIMITED"
	CodeRequestTimeout = "REQUEST_TIMEOUT"
	CodeInternal       = "INTERNAL_ERROR"
)

type Handler struct {
	service *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{service: svc}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[handler] encode response: %v", err)
	}
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:  message,
		Code:   code,
		Status: status,
	})
}

// writeServiceError maps service errors onto the error envelope.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingQuery):
		writeError(w, http.StatusBadRequest, CodeMissingQuery,
			"Provide a search query, a platform filter or a genre")
	case errors.Is(err, domain.ErrMissingCommand):
		writeError(w, http.StatusBadRequest, CodeMissingCommand, "Command is required")
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		writeError(w, http.StatusServiceUnavailable, CodeRequestTimeout,
			"Request timed out, please try again")
	default:
		log.Printf("[handler] unexpected error: %v", err)
		writeError(w, http.StatusInternalServerError, CodeInternal, "An unexpected error occurred")
	}
}

// RateLimited is served in place of a handler when the limiter rejects a request.
func (h *Handler) RateLimited(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusTooManyRequests, CodeRateLimited, "Too many requests, slow down")
}

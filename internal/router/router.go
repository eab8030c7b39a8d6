package router

import (
	"net/http"
	"time"

	"github.com/actuallystonmai/stream-aggregator/internal/handler"
	"github.com/actuallystonmai/stream-aggregator/internal/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Limiter gates /api routes; nil disables rate limiting.
	Limiter ratelimit.Limiter
	Timeout time.Duration
}

func Setup(h *handler.Handler, opts Options) http.Handler {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.Timeout))

	// Routes
	r.Route("/api", func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(ratelimit.Middleware(opts.Limiter, h.RateLimited))
		}
		r.Get("/search", h.Search)
		r.Post("/search", h.ParseCommand)
		r.Get("/platforms", h.ListPlatforms)
	})
	r.Get("/health", healthCheck)

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

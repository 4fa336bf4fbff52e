package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"football-live-service/internal/metrics"
)

// NewRouter registers the API routes with logging, recovery, and
// permissive CORS for browser clients on other origins.
func NewRouter(handler *Handler, logger *slog.Logger, recorder *metrics.Recorder) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return LoggingMiddleware(logger, recorder, next)
	})
	r.Use(func(next nethttp.Handler) nethttp.Handler {
		return RecoveryMiddleware(logger, next)
	})

	r.Get("/health", handler.Health)
	r.Get("/api/matches", handler.Matches)

	return r
}

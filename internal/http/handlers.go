package http

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"football-live-service/internal/domain"
)

// MatchSource supplies the aggregated schedule window for the API.
type MatchSource interface {
	Matches(ctx context.Context) []domain.Match
}

// Handler wires HTTP routes to the match aggregation service.
type Handler struct {
	src    MatchSource
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(src MatchSource, logger *slog.Logger) *Handler {
	return &Handler{
		src:    src,
		logger: logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Matches returns the aggregated three-day schedule window as a JSON array.
func (h *Handler) Matches(w nethttp.ResponseWriter, r *nethttp.Request) {
	matches := h.src.Matches(r.Context())
	h.writeJSON(w, nethttp.StatusOK, matches)
}

package server

import (
	"log/slog"
	"net/http"
	"strings"

	"football-live-service/internal/config"
	"football-live-service/internal/metrics"
	"football-live-service/internal/providers"
	"football-live-service/internal/providers/fixture"
	"football-live-service/internal/providers/vnres"
)

// providerFactory assembles the provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.MatchProvider {
	base := selectProvider(cfg, f.logger, f.metrics)
	return providers.NewInstrumentedProvider(base, normalizeProviderName(cfg.Provider, base), f.logger, f.metrics)
}

func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.MatchProvider {
	switch cfg.Provider {
	case "vnres", "":
		return vnres.NewClient(vnres.Config{
			BaseURL:         cfg.Feed.BaseURL,
			HTTPClient:      &http.Client{Timeout: cfg.Feed.Timeout},
			UserAgent:       cfg.Feed.UserAgent,
			Referer:         cfg.Feed.Referer,
			Origin:          cfg.Feed.Origin,
			SportFilter:     cfg.Feed.SportFilter,
			LiveWindow:      cfg.Feed.LiveWindow,
			DisplayTimezone: cfg.Feed.DisplayTimezone,
			StreamWorkers:   cfg.Feed.StreamWorkers,
			Logger:          logger,
			Metrics:         recorder,
		})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

// normalizeProviderName returns a lower-cased provider name, deriving one
// from the instance type when not explicitly configured.
func normalizeProviderName(raw string, provider providers.MatchProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	switch provider.(type) {
	case *vnres.Client:
		return "vnres"
	case *fixture.Provider:
		return "fixture"
	default:
		return "provider"
	}
}

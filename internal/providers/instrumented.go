package providers

import (
	"context"
	"log/slog"
	"time"

	"football-live-service/internal/domain"
	"football-live-service/internal/logging"
	"football-live-service/internal/metrics"
)

// instrumentedProvider wraps a MatchProvider with per-call metrics and logs.
// The feed client itself never retries; failed days are absorbed one level
// up, so the decorator's job is to make that degradation observable.
type instrumentedProvider struct {
	inner    MatchProvider
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewInstrumentedProvider decorates the given provider with metrics and
// structured logging under the given provider name.
func NewInstrumentedProvider(inner MatchProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) MatchProvider {
	if name == "" {
		name = "provider"
	}
	return &instrumentedProvider{
		inner:    inner,
		name:     name,
		logger:   logger,
		recorder: recorder,
	}
}

func (p *instrumentedProvider) FetchDay(ctx context.Context, dateKey string) ([]domain.Match, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}

	start := time.Now()
	matches, err := p.inner.FetchDay(ctx, dateKey)
	duration := time.Since(start)

	p.recorder.RecordProviderAttempt(p.name, duration, err)

	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		logging.Warn(logger, "day fetch failed",
			slog.String(logging.FieldProvider, p.name),
			slog.String(logging.FieldDate, dateKey),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			slog.Any("error", err),
		)
		return nil, err
	}

	logging.Info(logger, "day fetched",
		slog.String(logging.FieldProvider, p.name),
		slog.String(logging.FieldDate, dateKey),
		slog.Int(logging.FieldCount, len(matches)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return matches, nil
}

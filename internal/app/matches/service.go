package matches

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"football-live-service/internal/domain"
	"football-live-service/internal/logging"
	"football-live-service/internal/metrics"
	"football-live-service/internal/providers"
	"football-live-service/internal/timeutil"
)

// Service aggregates the yesterday/today/tomorrow schedule window from a
// provider into one ordered match list.
type Service struct {
	provider  providers.MatchProvider
	sourceLoc *time.Location
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
}

// NewService constructs a Service over the given provider. Date keys for
// the window are computed in sourceLoc.
func NewService(provider providers.MatchProvider, sourceLoc *time.Location, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if sourceLoc == nil {
		sourceLoc = time.UTC
	}
	return &Service{
		provider:  provider,
		sourceLoc: sourceLoc,
		logger:    logger,
		metrics:   recorder,
		now:       time.Now,
	}
}

// Matches fetches the three window days concurrently, concatenates them in
// day order, and sorts live matches first. A failed day is logged and
// contributes nothing; only the response shape is guaranteed, so the
// result is never nil.
func (s *Service) Matches(ctx context.Context) []domain.Match {
	start := time.Now()
	keys := timeutil.Window(s.now(), s.sourceLoc)

	days := make([][]domain.Match, len(keys))
	var wg sync.WaitGroup
	for i, key := range keys {
		i, key := i, key
		wg.Add(1)
		go func() {
			defer wg.Done()
			days[i] = s.fetchDay(ctx, key)
		}()
	}
	wg.Wait()

	emptyDays := 0
	all := make([]domain.Match, 0, len(days[0])+len(days[1])+len(days[2]))
	for _, day := range days {
		if len(day) == 0 {
			emptyDays++
		}
		all = append(all, day...)
	}
	domain.OrderLiveFirst(all)

	s.metrics.RecordWindow(time.Since(start), emptyDays)
	logging.Info(logging.FromContext(ctx, s.logger), "window aggregated",
		slog.Int(logging.FieldCount, len(all)),
		slog.Int("empty_days", emptyDays),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return all
}

func (s *Service) fetchDay(ctx context.Context, key string) []domain.Match {
	day, err := s.provider.FetchDay(ctx, key)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "day fetch failed",
			slog.String(logging.FieldDate, key),
			slog.Any("error", err),
		)
		return nil
	}
	return day
}

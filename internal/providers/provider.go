package providers

import (
	"context"

	"football-live-service/internal/domain"
)

// MatchProvider defines how one schedule day is fetched and normalized.
// dateKey is a YYYYMMDD string in the feed's timezone. Implementations
// return an error for whole-day transport or envelope failures; the
// window aggregator absorbs it into an empty day.
type MatchProvider interface {
	FetchDay(ctx context.Context, dateKey string) ([]domain.Match, error)
}

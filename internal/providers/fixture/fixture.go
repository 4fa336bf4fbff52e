package fixture

import (
	"context"
	"time"

	"football-live-service/internal/domain"
)

// Provider returns a static schedule useful for local testing and
// bootstrapping without hitting the real feed.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchDay returns a deterministic set of example matches pinned around
// the current time so one is live and one is upcoming.
func (p *Provider) FetchDay(ctx context.Context, dateKey string) ([]domain.Match, error) {
	_ = ctx
	_ = dateKey

	now := p.now()
	liveKickoff := now.Add(-30 * time.Minute)
	upcomingKickoff := now.Add(2 * time.Hour)

	liveScore := "1 - 0"
	matches := []domain.Match{
		{
			MatchTime:    liveKickoff.Format("03:04 PM"),
			KickoffMs:    liveKickoff.UnixMilli(),
			Status:       domain.StatusLive,
			HomeTeamName: "Fixture United",
			AwayTeamName: "Fixture City",
			LeagueName:   "Fixture League",
			MatchScore:   &liveScore,
			Streams: []domain.StreamLink{
				{Label: "SD", URL: "https://example.com/fixture/sd.m3u8"},
			},
		},
		{
			MatchTime:    upcomingKickoff.Format("03:04 PM"),
			KickoffMs:    upcomingKickoff.UnixMilli(),
			Status:       domain.StatusUpcoming,
			HomeTeamName: "Fixture Rovers",
			AwayTeamName: "Fixture Wanderers",
			LeagueName:   "Fixture League",
			Streams:      []domain.StreamLink{},
		},
	}

	return matches, nil
}

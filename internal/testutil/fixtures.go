package testutil

import (
	"time"

	"football-live-service/internal/domain"
)

// SampleMatch builds a match with sensible defaults for tests.
func SampleMatch(status domain.MatchStatus, kickoff time.Time) domain.Match {
	return domain.Match{
		MatchTime:    kickoff.Format("03:04 PM"),
		KickoffMs:    kickoff.UnixMilli(),
		Status:       status,
		HomeTeamName: "Home FC",
		AwayTeamName: "Away FC",
		LeagueName:   "Test League",
		Streams:      []domain.StreamLink{},
	}
}

package vnres

import (
	"fmt"
	"time"

	"football-live-service/internal/domain"
)

// mapMatch converts one upstream record to the canonical match shape.
// Name fallback order: homeName -> hostName -> "Home" (away and league
// analogous). The score is nil unless the upstream record carries one;
// score fields are coupled upstream, so a present home score implies a
// present away score.
func mapMatch(m rawMatch, status domain.MatchStatus, streams []domain.StreamLink, loc *time.Location) domain.Match {
	if status != domain.StatusLive {
		streams = nil
	}
	if streams == nil {
		streams = []domain.StreamLink{}
	}
	return domain.Match{
		MatchTime:    time.UnixMilli(m.MatchTime).In(loc).Format(displayTimeLayout),
		KickoffMs:    m.MatchTime,
		Status:       status,
		HomeTeamName: firstNonEmpty(m.HomeName, m.HostName, defaultHomeName),
		AwayTeamName: firstNonEmpty(m.AwayName, m.GuestName, defaultAwayName),
		LeagueName:   firstNonEmpty(m.LeagueName, m.SubCateName, defaultLeagueName),
		MatchScore:   formatScore(m),
		Streams:      streams,
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func formatScore(m rawMatch) *string {
	if m.HomeScore == nil {
		return nil
	}
	away := 0
	if m.AwayScore != nil {
		away = *m.AwayScore
	}
	score := fmt.Sprintf("%d - %d", *m.HomeScore, away)
	return &score
}

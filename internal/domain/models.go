package domain

import "time"

// MatchStatus mirrors the shared contract for match lifecycle states.
type MatchStatus string

const (
	StatusUpcoming MatchStatus = "upcoming"
	StatusLive     MatchStatus = "live"
	StatusFinished MatchStatus = "finished"
)

// LiveWindow is the canonical duration after kickoff during which a match
// counts as live absent an explicit end signal from upstream.
const LiveWindow = 3 * time.Hour

// StreamLink is a single playable HLS variant for a broadcaster room.
type StreamLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Match is the canonical match shape exposed by the service.
// MatchScore is nil when the upstream record carries no score yet.
type Match struct {
	MatchTime    string       `json:"match_time"`
	KickoffMs    int64        `json:"kickoff_ms"`
	Status       MatchStatus  `json:"match_status"`
	HomeTeamName string       `json:"home_team_name"`
	AwayTeamName string       `json:"away_team_name"`
	LeagueName   string       `json:"league_name"`
	MatchScore   *string      `json:"match_score"`
	Streams      []StreamLink `json:"streams"`
}

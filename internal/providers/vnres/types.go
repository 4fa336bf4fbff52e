package vnres

import "encoding/json"

// envelope is the outer shape shared by schedule and room-detail payloads.
type envelope struct {
	Code int             `json:"code"`
	Data json.RawMessage `json:"data"`
}

// rawMatch is one upstream schedule record. The feed uses alternate key
// names inconsistently across revisions (homeName/hostName and friends),
// so both variants are declared and resolved by the mapper.
type rawMatch struct {
	MatchTime   int64       `json:"matchTime"`
	SportType   int         `json:"sportType"`
	HomeName    string      `json:"homeName"`
	HostName    string      `json:"hostName"`
	AwayName    string      `json:"awayName"`
	GuestName   string      `json:"guestName"`
	LeagueName  string      `json:"leagueName"`
	SubCateName string      `json:"subCateName"`
	HomeScore   *int        `json:"homeScore"`
	AwayScore   *int        `json:"awayScore"`
	Anchors     []anchorRef `json:"anchors"`
}

type anchorRef struct {
	Anchor anchor `json:"anchor"`
}

type anchor struct {
	RoomNum int64 `json:"roomNum"`
}

// rooms returns the broadcaster room ids in feed order.
func (m rawMatch) rooms() []int64 {
	if len(m.Anchors) == 0 {
		return nil
	}
	out := make([]int64, 0, len(m.Anchors))
	for _, a := range m.Anchors {
		if a.Anchor.RoomNum != 0 {
			out = append(out, a.Anchor.RoomNum)
		}
	}
	return out
}

type detailData struct {
	Stream *streamInfo `json:"stream"`
}

type streamInfo struct {
	M3U8   string `json:"m3u8"`
	HDM3U8 string `json:"hdM3u8"`
}

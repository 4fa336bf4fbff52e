package domain

// Classify derives the match status from the scheduled kickoff and the
// current instant, both in epoch milliseconds. The live window is
// inclusive at both ends. The clock is always passed in explicitly so the
// classification stays deterministic under test.
func Classify(kickoffMs, nowMs, liveWindowMs int64) MatchStatus {
	switch {
	case nowMs < kickoffMs:
		return StatusUpcoming
	case nowMs <= kickoffMs+liveWindowMs:
		return StatusLive
	default:
		return StatusFinished
	}
}

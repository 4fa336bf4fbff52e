package domain

import "sort"

// OrderLiveFirst sorts matches in place: all live matches before the rest,
// ascending kickoff time inside each partition. The sort is stable so
// matches sharing a kickoff keep their feed order.
func OrderLiveFirst(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		li, lj := matches[i].Status == StatusLive, matches[j].Status == StatusLive
		if li != lj {
			return li
		}
		return matches[i].KickoffMs < matches[j].KickoffMs
	})
}

package timeutil

import "time"

// DateKeyLayout is the compact date format (YYYYMMDD) the schedule feed
// keys its per-day resources by.
const DateKeyLayout = "20060102"

// DateKey formats a time as a feed date key in its current location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// Window returns the three consecutive date keys (yesterday, today,
// tomorrow) for the given instant evaluated in loc. A nil loc falls back
// to UTC.
func Window(now time.Time, loc *time.Location) [3]string {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return [3]string{
		DateKey(local.AddDate(0, 0, -1)),
		DateKey(local),
		DateKey(local.AddDate(0, 0, 1)),
	}
}

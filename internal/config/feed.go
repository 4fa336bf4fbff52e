package config

import "time"

// FeedConfig controls how we talk to the vnres schedule/room feed.
type FeedConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Referer   string
	Origin    string
	// SportFilter keeps only records with this upstream sport-type code;
	// zero disables filtering.
	SportFilter     int
	LiveWindow      time.Duration
	SourceTimezone  string
	DisplayTimezone string
	StreamWorkers   int
}

func loadFeed() FeedConfig {
	return FeedConfig{
		BaseURL:         envOrDefault(envFeedBaseURL, defaultFeedBaseURL),
		Timeout:         durationEnvOrDefault(envFeedTimeout, defaultFeedTimeout),
		UserAgent:       envOrDefault(envFeedUserAgent, defaultFeedUserAgent),
		Referer:         envOrDefault(envFeedReferer, defaultFeedReferer),
		Origin:          envOrDefault(envFeedOrigin, defaultFeedOrigin),
		SportFilter:     nonNegativeIntEnvOrDefault(envSportFilter, defaultSportFilter),
		LiveWindow:      durationEnvOrDefault(envLiveWindow, defaultLiveWindow),
		SourceTimezone:  envOrDefault(envSourceTimezone, defaultSourceTimezone),
		DisplayTimezone: envOrDefault(envDisplayTimezone, defaultDisplayTimezone),
		StreamWorkers:   intEnvOrDefault(envStreamWorkers, defaultStreamWorkers),
	}
}

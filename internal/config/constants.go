package config

import "time"

const (
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envFeedBaseURL     = "FEED_BASE_URL"
	envFeedTimeout     = "FEED_TIMEOUT"
	envFeedUserAgent   = "FEED_USER_AGENT"
	envFeedReferer     = "FEED_REFERER"
	envFeedOrigin      = "FEED_ORIGIN"
	envSportFilter     = "SPORT_FILTER"
	envLiveWindow      = "LIVE_WINDOW"
	envSourceTimezone  = "SOURCE_TZ"
	envDisplayTimezone = "DISPLAY_TZ"
	envStreamWorkers   = "STREAM_CONCURRENCY"

	defaultPort        = "4000"
	defaultProvider    = "vnres"
	defaultMetricsPort = "9090"

	defaultFeedBaseURL = "https://json.vnres.co"
	defaultFeedTimeout = 10 * Duration(time.Second)
	// Header set the feed expects from browser-like traffic.
	defaultFeedUserAgent = "Mozilla/5.0"
	defaultFeedReferer   = "https://socolivev.co/"
	defaultFeedOrigin    = "https://socolivev.co"
	// Feed schedule dates are keyed in Vietnam time; kickoff display uses Myanmar time.
	defaultSourceTimezone  = "Asia/Ho_Chi_Minh"
	defaultDisplayTimezone = "Asia/Yangon"
	// Football in the upstream sport taxonomy.
	defaultSportFilter = 1
	defaultLiveWindow  = 3 * Duration(time.Hour)
	// Cap on concurrent room-detail lookups per schedule day.
	defaultStreamWorkers = 8
)

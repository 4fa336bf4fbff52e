package vnres

import "time"

const (
	providerName = "vnres"

	defaultBaseURL     = "https://json.vnres.co"
	defaultHTTPTimeout = 10 * time.Second
	// Header set the feed expects from browser-like traffic.
	defaultUserAgent = "Mozilla/5.0"
	defaultReferer   = "https://socolivev.co/"
	defaultOrigin    = "https://socolivev.co"

	defaultDisplayTimezone = "Asia/Yangon"
	defaultStreamWorkers   = 8

	// Top-level envelope code signaling a usable payload.
	successCode = 200

	maxResponseBytes = 4 << 20

	displayTimeLayout = "03:04 PM"

	defaultHomeName   = "Home"
	defaultAwayName   = "Away"
	defaultLeagueName = "Football"
)

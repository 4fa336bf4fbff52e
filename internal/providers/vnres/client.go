package vnres

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"football-live-service/internal/domain"
	"football-live-service/internal/logging"
	"football-live-service/internal/metrics"
)

// Config controls how the vnres client reaches the upstream feed.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	Referer    string
	Origin     string
	// SportFilter keeps only records with this sport-type code; zero keeps all.
	SportFilter     int
	LiveWindow      time.Duration
	DisplayTimezone string
	StreamWorkers   int
	Logger          *slog.Logger
	Metrics         *metrics.Recorder
}

// Client fetches schedule days from the vnres feed, resolves stream links
// for live matches, and maps everything to domain models. A Client holds
// no per-request state and is safe for concurrent use.
type Client struct {
	baseURL       string
	httpClient    httpDoer
	userAgent     string
	referer       string
	origin        string
	sportFilter   int
	liveWindow    time.Duration
	displayLoc    *time.Location
	streamWorkers int
	now           func() time.Time
	logger        *slog.Logger
	metrics       *metrics.Recorder
}

// NewClient constructs a vnres client with the provided configuration.
func NewClient(cfg Config) *Client {
	liveWindow := cfg.LiveWindow
	if liveWindow <= 0 {
		liveWindow = domain.LiveWindow
	}
	return &Client{
		baseURL:       normalizeBaseURL(cfg.BaseURL),
		httpClient:    resolveHTTPClient(cfg.HTTPClient),
		userAgent:     stringOrDefault(cfg.UserAgent, defaultUserAgent),
		referer:       stringOrDefault(cfg.Referer, defaultReferer),
		origin:        stringOrDefault(cfg.Origin, defaultOrigin),
		sportFilter:   cfg.SportFilter,
		liveWindow:    liveWindow,
		displayLoc:    resolveLocation(cfg.DisplayTimezone),
		streamWorkers: resolveWorkers(cfg.StreamWorkers),
		now:           time.Now,
		logger:        cfg.Logger,
		metrics:       cfg.Metrics,
	}
}

// FetchDay retrieves and normalizes one schedule day. A whole-day
// transport or envelope failure returns an error; a well-formed "no data"
// response returns an empty slice.
func (c *Client) FetchDay(ctx context.Context, dateKey string) ([]domain.Match, error) {
	text, err := c.fetchText(ctx, c.scheduleURL(dateKey))
	if err != nil {
		return nil, err
	}

	env, err := extractEnvelope(text, schedulePattern)
	if err != nil {
		return nil, err
	}
	if env.Code != successCode {
		logging.Info(logging.FromContext(ctx, c.logger), "schedule returned no data",
			slog.String(logging.FieldProvider, providerName),
			slog.String(logging.FieldDate, dateKey),
			slog.Int("code", env.Code),
		)
		return []domain.Match{}, nil
	}

	var raws []rawMatch
	if err := json.Unmarshal(env.Data, &raws); err != nil {
		return nil, fmt.Errorf("%w: data: %v", ErrEnvelope, err)
	}

	nowMs := c.now().UnixMilli()
	windowMs := c.liveWindow.Milliseconds()

	// Sport filter and status classification run before any room lookup so
	// filtered and non-live records never cost a detail request.
	entries := make([]dayEntry, 0, len(raws))
	for _, raw := range raws {
		if c.sportFilter != 0 && raw.SportType != c.sportFilter {
			continue
		}
		entries = append(entries, dayEntry{
			raw:    raw,
			status: domain.Classify(raw.MatchTime, nowMs, windowMs),
		})
	}

	c.resolveDayStreams(ctx, entries)

	matches := make([]domain.Match, 0, len(entries))
	for _, e := range entries {
		matches = append(matches, mapMatch(e.raw, e.status, e.streams, c.displayLoc))
	}
	return matches, nil
}

type dayEntry struct {
	raw     rawMatch
	status  domain.MatchStatus
	streams []domain.StreamLink
}

func (c *Client) scheduleURL(dateKey string) string {
	return fmt.Sprintf("%s/match/matches_%s.json", c.baseURL, dateKey)
}

func (c *Client) detailURL(room int64) string {
	return fmt.Sprintf("%s/room/%d/detail.json", c.baseURL, room)
}

func (c *Client) fetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Referer", c.referer)
	req.Header.Set("Origin", c.origin)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w %d: %s", ErrFeedStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func stringOrDefault(val, fallback string) string {
	if val != "" {
		return val
	}
	return fallback
}

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.Feed.BaseURL != defaultFeedBaseURL {
		t.Fatalf("expected default feed base url %s, got %s", defaultFeedBaseURL, cfg.Feed.BaseURL)
	}
	if cfg.Feed.SportFilter != defaultSportFilter {
		t.Fatalf("expected default sport filter %d, got %d", defaultSportFilter, cfg.Feed.SportFilter)
	}
	if cfg.Feed.LiveWindow != defaultLiveWindow {
		t.Fatalf("expected default live window %s, got %s", defaultLiveWindow, cfg.Feed.LiveWindow)
	}
	if cfg.Feed.SourceTimezone != defaultSourceTimezone {
		t.Fatalf("expected source tz %s, got %s", defaultSourceTimezone, cfg.Feed.SourceTimezone)
	}
	if cfg.Feed.StreamWorkers != defaultStreamWorkers {
		t.Fatalf("expected default stream workers %d, got %d", defaultStreamWorkers, cfg.Feed.StreamWorkers)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envFeedBaseURL, "http://example.com/feed")
	t.Setenv(envFeedTimeout, "5s")
	t.Setenv(envSportFilter, "2")
	t.Setenv(envLiveWindow, "150m")
	t.Setenv(envStreamWorkers, "3")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.Feed.BaseURL != "http://example.com/feed" {
		t.Fatalf("expected feed base url override, got %s", cfg.Feed.BaseURL)
	}
	if cfg.Feed.Timeout != 5*time.Second {
		t.Fatalf("expected feed timeout 5s, got %s", cfg.Feed.Timeout)
	}
	if cfg.Feed.SportFilter != 2 {
		t.Fatalf("expected sport filter 2, got %d", cfg.Feed.SportFilter)
	}
	if cfg.Feed.LiveWindow != 150*time.Minute {
		t.Fatalf("expected live window 150m, got %s", cfg.Feed.LiveWindow)
	}
	if cfg.Feed.StreamWorkers != 3 {
		t.Fatalf("expected stream workers 3, got %d", cfg.Feed.StreamWorkers)
	}
}

func TestLoadSportFilterZeroDisables(t *testing.T) {
	t.Setenv(envSportFilter, "0")

	cfg := Load()

	if cfg.Feed.SportFilter != 0 {
		t.Fatalf("expected sport filter disabled, got %d", cfg.Feed.SportFilter)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envLiveWindow, "not-a-duration")

	cfg := Load()

	if cfg.Feed.LiveWindow != defaultLiveWindow {
		t.Fatalf("expected default live window on invalid value, got %s", cfg.Feed.LiveWindow)
	}
}

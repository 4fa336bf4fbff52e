package fixture

import (
	"context"
	"testing"
	"time"

	"football-live-service/internal/domain"
)

func TestFetchDayReturnsDeterministicMatches(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	p := New()
	p.now = func() time.Time { return fixed }

	matches, err := p.FetchDay(context.Background(), "20240101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	if matches[0].Status != domain.StatusLive {
		t.Fatalf("expected first match live, got %s", matches[0].Status)
	}
	if len(matches[0].Streams) != 1 {
		t.Fatalf("expected the live match to carry a stream, got %+v", matches[0].Streams)
	}
	if matches[1].Status != domain.StatusUpcoming {
		t.Fatalf("expected second match upcoming, got %s", matches[1].Status)
	}
	if matches[1].Streams == nil {
		t.Fatal("streams must be an empty list, not null")
	}

	wantLive := fixed.Add(-30 * time.Minute).UnixMilli()
	if matches[0].KickoffMs != wantLive {
		t.Fatalf("expected live kickoff %d, got %d", wantLive, matches[0].KickoffMs)
	}
}

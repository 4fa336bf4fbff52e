package matches

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"football-live-service/internal/domain"
)

type stubProvider struct {
	mu      sync.Mutex
	byKey   map[string][]domain.Match
	errKeys map[string]error
	keys    []string
}

func (s *stubProvider) FetchDay(ctx context.Context, dateKey string) ([]domain.Match, error) {
	_ = ctx
	s.mu.Lock()
	s.keys = append(s.keys, dateKey)
	s.mu.Unlock()
	if err, ok := s.errKeys[dateKey]; ok {
		return nil, err
	}
	return s.byKey[dateKey], nil
}

func (s *stubProvider) requestedKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.keys...)
}

func fixedService(p *stubProvider, now time.Time) *Service {
	svc := NewService(p, time.UTC, nil, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func TestMatchesOrdersLiveFirstAcrossDays(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	p := &stubProvider{byKey: map[string][]domain.Match{
		"20240614": {
			{HomeTeamName: "finished", Status: domain.StatusFinished, KickoffMs: 100},
			{HomeTeamName: "live-early", Status: domain.StatusLive, KickoffMs: 200},
		},
		"20240615": {
			{HomeTeamName: "upcoming", Status: domain.StatusUpcoming, KickoffMs: 300},
		},
		"20240616": {
			{HomeTeamName: "live-late", Status: domain.StatusLive, KickoffMs: 400},
		},
	}}

	got := fixedService(p, now).Matches(context.Background())
	if len(got) != 4 {
		t.Fatalf("expected 4 matches, got %d", len(got))
	}

	wantOrder := []string{"live-early", "live-late", "finished", "upcoming"}
	for i, name := range wantOrder {
		if got[i].HomeTeamName != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, got[i].HomeTeamName)
		}
	}
}

func TestMatchesRequestsThreeWindowDays(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	p := &stubProvider{byKey: map[string][]domain.Match{}}

	fixedService(p, now).Matches(context.Background())

	keys := p.requestedKeys()
	if len(keys) != 3 {
		t.Fatalf("expected 3 day fetches, got %d", len(keys))
	}
	want := map[string]bool{"20240614": true, "20240615": true, "20240616": true}
	for _, key := range keys {
		if !want[key] {
			t.Fatalf("unexpected day key %s", key)
		}
	}
}

func TestMatchesToleratesFailingDay(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	p := &stubProvider{
		byKey: map[string][]domain.Match{
			"20240615": {{HomeTeamName: "kept", Status: domain.StatusUpcoming}},
		},
		errKeys: map[string]error{
			"20240614": errors.New("feed down"),
		},
	}

	got := fixedService(p, now).Matches(context.Background())
	if len(got) != 1 || got[0].HomeTeamName != "kept" {
		t.Fatalf("expected the surviving day only, got %+v", got)
	}
}

func TestMatchesEmptyWindowIsNotNil(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	p := &stubProvider{byKey: map[string][]domain.Match{}}

	got := fixedService(p, now).Matches(context.Background())
	if got == nil {
		t.Fatal("an empty window must serialize as [], not null")
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

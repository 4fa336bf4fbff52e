package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type resolverStats struct {
	calls  int
	errors int
}

// Recorder captures lightweight, in-memory metrics about upstream calls.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu       sync.Mutex
	stats    map[string]*providerStats
	resolver resolverStats
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a day-fetch call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordResolve tracks a single room-detail resolution attempt.
func (r *Recorder) RecordResolve(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.resolver.calls++
	if err != nil {
		r.resolver.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordResolve(duration, err)
	}
}

// RecordWindow tracks one full 3-day aggregation pass.
func (r *Recorder) RecordWindow(duration time.Duration, emptyDays int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordWindow(duration, emptyDays)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// ResolveCalls returns the total room resolutions recorded.
func (r *Recorder) ResolveCalls() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolver.calls
}

// ResolveErrors returns the total failed room resolutions recorded.
func (r *Recorder) ResolveErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolver.errors
}

// Snapshot is a copy of the current stats for a provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return Snapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return Snapshot{}
}

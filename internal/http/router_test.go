package http

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"football-live-service/internal/domain"
	"football-live-service/internal/testutil"
)

func newTestRouter() nethttp.Handler {
	logger, _ := testutil.NewBufferLogger()
	handler := NewHandler(stubSource{matches: []domain.Match{}}, logger)
	return NewRouter(handler, logger, nil)
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter()

	rr := testutil.Serve(router, nethttp.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	rr = testutil.Serve(router, nethttp.MethodGet, "/api/matches", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	rr = testutil.Serve(router, nethttp.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNotFound)
}

func TestRouterAllowsCrossOrigin(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(nethttp.MethodGet, "/api/matches", nil)
	req.Header.Set("Origin", "https://viewer.example")
	rr := testutil.ServeRequest(router, req)

	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS origin, got %q", got)
	}
}

func TestRouterHandlesPreflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(nethttp.MethodOptions, "/api/matches", nil)
	req.Header.Set("Origin", "https://viewer.example")
	req.Header.Set("Access-Control-Request-Method", nethttp.MethodGet)
	rr := testutil.ServeRequest(router, req)

	if rr.Code >= 400 {
		t.Fatalf("expected preflight to succeed, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS origin on preflight, got %q", got)
	}
}

func TestRouterPanicBecomesJSONError(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	handler := NewHandler(panicSource{}, logger)
	router := NewRouter(handler, logger, nil)

	rr := testutil.Serve(router, nethttp.MethodGet, "/api/matches", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusInternalServerError)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] == "" {
		t.Fatalf("expected error body, got %+v", resp)
	}
}

type panicSource struct{}

func (panicSource) Matches(ctx context.Context) []domain.Match {
	panic("assembly failed")
}

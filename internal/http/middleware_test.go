package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"football-live-service/internal/logging"
	"football-live-service/internal/testutil"
)

func TestLoggingMiddlewareAssignsRequestID(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	var seenID string
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		seenID = requestIDFromContext(r.Context())
		w.WriteHeader(nethttp.StatusNoContent)
	})

	rr := testutil.Serve(LoggingMiddleware(logger, nil, inner), nethttp.MethodGet, "/api/matches", nil)

	if rr.Code != nethttp.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
	if seenID == "" {
		t.Fatal("expected a generated request id in the context")
	}
	if got := rr.Header().Get("X-Request-ID"); got != seenID {
		t.Fatalf("expected response header to echo the request id, got %q", got)
	}
	if !strings.Contains(buf.String(), "request complete") {
		t.Fatalf("expected a completion log line, got %q", buf.String())
	}
}

func TestLoggingMiddlewareKeepsClientRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
	})

	req := httptest.NewRequest(nethttp.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "client-chosen")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, inner), req)

	if got := rr.Header().Get("X-Request-ID"); got != "client-chosen" {
		t.Fatalf("expected the client id to be kept, got %q", got)
	}
}

func TestLoggingMiddlewarePropagatesLogger(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		logging.FromContext(r.Context(), nil).Info("inside handler")
	})

	testutil.Serve(LoggingMiddleware(logger, nil, inner), nethttp.MethodGet, "/health", nil)

	if !strings.Contains(buf.String(), "inside handler") {
		t.Fatalf("expected the handler to log through the request logger, got %q", buf.String())
	}
}

func TestRecoveryMiddlewareReturnsJSONError(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	inner := nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		panic("boom")
	})

	rr := testutil.Serve(RecoveryMiddleware(logger, inner), nethttp.MethodGet, "/api/matches", nil)

	testutil.AssertStatus(t, rr, nethttp.StatusInternalServerError)
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed decoding error body: %v", err)
	}
	if resp["error"] == "" {
		t.Fatalf("expected a top-level error message, got %+v", resp)
	}
}

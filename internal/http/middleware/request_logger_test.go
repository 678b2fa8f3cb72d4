package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/seedsofinnocence/leads-gateway/pkg/logging"
)

func TestRequestLoggerAssignsID(t *testing.T) {
	var seenID string
	handler := RequestLogger(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if seenID == "" {
		t.Fatal("handler must see the generated request ID in context")
	}
	if got := w.Header().Get(RequestIDHeader); got != seenID {
		t.Errorf("response header %q does not match context ID %q", got, seenID)
	}
}

func TestRequestLoggerReusesIncomingID(t *testing.T) {
	var seenID string
	handler := RequestLogger(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/landing-pages", nil)
	req.Header.Set(RequestIDHeader, "upstream-id-42")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if seenID != "upstream-id-42" {
		t.Errorf("expected incoming ID to be reused, got %q", seenID)
	}
	if got := w.Header().Get(RequestIDHeader); got != "upstream-id-42" {
		t.Errorf("response header = %q", got)
	}
}

func TestRequestLoggerRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, "info", "")
	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/website-bookings", nil))

	out := buf.String()
	if !strings.Contains(out, "request completed") {
		t.Fatalf("missing completion log: %s", out)
	}
	if !strings.Contains(out, `"status":400`) {
		t.Errorf("completion log missing response status: %s", out)
	}
	if !strings.Contains(out, `"request_id"`) {
		t.Errorf("completion log missing request ID: %s", out)
	}
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if got := GetRequestID(req.Context()); got != "" {
		t.Errorf("expected empty ID without middleware, got %q", got)
	}
}

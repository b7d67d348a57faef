// Merchantlens - Predictive Commerce Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/merchantlens

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/merchantlens/internal/config"
)

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitRequests = 2
	mw.RateLimitWindow = time.Minute
	h := newTestRouter(t, 0, mw)

	body := `{"customers":[]}`
	for i := 0; i < 2; i++ {
		rec, _ := doRequest(t, h, http.MethodPost, "/api/v1/churn/at-risk", body)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}

	rec, env := doRequest(t, h, http.MethodPost, "/api/v1/churn/at-risk", body)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if env.Error == nil || env.Error.Code != CodeRateLimitExceeded {
		t.Errorf("error = %+v, want RATE_LIMIT_EXCEEDED", env.Error)
	}

	// Probes have their own, more permissive limiter.
	rec, _ = doRequest(t, h, http.MethodGet, "/api/v1/health/live", "")
	if rec.Code != http.StatusOK {
		t.Errorf("health after throttling = %d, want 200", rec.Code)
	}
}

func TestRouter_NotFoundEnvelope(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, 0, nil)

	rec, env := doRequest(t, h, http.MethodGet, "/nowhere", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if env.Status != "error" || env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("envelope = %+v, want NOT_FOUND", env)
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, 0, nil)

	rec, _ := doRequest(t, h, http.MethodPost, "/api/v1/churn/at-risk", `{"customers":[]}`)

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Cache-Control":          "no-store",
	}
	for name, want := range headers {
		if got := rec.Header().Get(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS should not be set on plain HTTP")
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	h := NewRouter(NewHandler(nil), NewChiMiddlewareFromSecurity(config.SecurityConfig{
		CORSOrigins:       []string{"https://shop.example.com"},
		RateLimitDisabled: true,
	}), 1<<20).SetupChi()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/forecasts", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, 0, nil)

	doRequest(t, h, http.MethodPost, "/api/v1/churn/at-risk", `{"customers":[]}`)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Error("exposition missing api_requests_total")
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"line\nbreak", "line\\x0abreak"},
		{"tab\there", "tab\\x09here"},
		{"del\x7f", "del\\x7f"},
	}
	for _, tt := range tests {
		if got := sanitizeLogValue(tt.input); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

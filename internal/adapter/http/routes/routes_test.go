package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"voice_billing/internal/bootstrap"
	"voice_billing/internal/config"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T, apiKey string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		App:     config.AppConfig{Env: "test", StoreDriver: "memory"},
		Billing: config.BillingConfig{Timezone: "UTC", RoundingPolicy: "none", DueAfter: 168 * time.Hour},
		Token:   config.TokenConfig{Secret: "secret", TTL: time.Hour},
		Scheduler: config.SchedulerConfig{
			OverdueCron:  "0 0 * * *",
			ReminderCron: "0 9 * * *",
		},
		Admin: config.AdminConfig{APIKey: apiKey},
	}
	c, err := bootstrap.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(c.Close)
	return NewRouter(c)
}

func TestNewRouter(t *testing.T) {
	r := newTestRouter(t, "k")

	cases := []struct {
		name       string
		method     string
		path       string
		apiKey     string
		wantStatus int
	}{
		{name: "ping", method: http.MethodGet, path: "/v1/ping", wantStatus: http.StatusOK},
		{name: "admin route without key", method: http.MethodGet, path: "/v1/scheduler/status", wantStatus: http.StatusUnauthorized},
		{name: "admin route with key", method: http.MethodGet, path: "/v1/scheduler/status", apiKey: "k", wantStatus: http.StatusOK},
		{name: "unknown invoice", method: http.MethodGet, path: "/v1/invoices/acme/ACM092025", apiKey: "k", wantStatus: http.StatusNotFound},
		{name: "manual sweep", method: http.MethodPost, path: "/v1/scheduler/run/update_overdue_invoices", apiKey: "k", wantStatus: http.StatusOK},
		{name: "unknown job", method: http.MethodPost, path: "/v1/scheduler/run/nope", apiKey: "k", wantStatus: http.StatusNotFound},
		{name: "public invoice needs a token", method: http.MethodGet, path: "/v1/public/invoice", wantStatus: http.StatusUnauthorized},
		{name: "stripe not configured", method: http.MethodPost, path: "/v1/webhooks/stripe", wantStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.apiKey != "" {
				req.Header.Set("X-API-Key", tc.apiKey)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tc.wantStatus, w.Code, w.Body.String())
			}
			if w.Header().Get("X-Request-Id") == "" {
				t.Fatalf("expected a request id header")
			}
		})
	}

	t.Run("admin routes disabled without a key", func(t *testing.T) {
		r := newTestRouter(t, "")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/scheduler/status", nil))
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

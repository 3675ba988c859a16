package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dreamshoots/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

func TestAdminToken(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		value      string
		wantStatus int
		wantCalled bool
	}{
		{"valid token", "X-Admin-Token", "s3cret", http.StatusOK, true},
		{"missing token", "", "", http.StatusUnauthorized, false},
		{"wrong token", "X-Admin-Token", "guess", http.StatusUnauthorized, false},
		{"token prefix", "X-Admin-Token", "s3cre", http.StatusUnauthorized, false},
		{"token in wrong header", "Authorization", "s3cret", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			rejected := 0
			gate := AdminToken("s3cret", "X-Admin-Token", logger.Discard(), func() { rejected++ })
			handle := gate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()
			handle(rec, req, nil)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if called != tt.wantCalled {
				t.Errorf("handler called = %v, want %v", called, tt.wantCalled)
			}
			if !tt.wantCalled {
				if rejected != 1 {
					t.Errorf("onReject called %d times, want 1", rejected)
				}
				if !strings.Contains(rec.Body.String(), "UNAUTHORIZED") {
					t.Errorf("expected UNAUTHORIZED code in body, got %s", rec.Body.String())
				}
			}
		})
	}
}

func TestAdminToken_EmptySecretRejectsEverything(t *testing.T) {
	gate := AdminToken("", "", logger.Discard(), nil)
	handle := gate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		t.Fatal("handler must not run without a configured secret")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set(DefaultAdminTokenHeader, "anything")
	rec := httptest.NewRecorder()
	handle(rec, req, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httputil "dreamshoots/pkg/http"
	"dreamshoots/pkg/logger"
)

func TestRateLimiter_Allow(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute, nil, logger.Discard())
	defer limiter.Stop()

	if !limiter.Allow("a") || !limiter.Allow("a") {
		t.Fatal("first two requests should be allowed")
	}
	if limiter.Allow("a") {
		t.Error("third request should be limited")
	}
	if !limiter.Allow("b") {
		t.Error("other clients have their own window")
	}
	if !limiter.Allow("") {
		t.Error("requests without a key are never limited")
	}
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	limiter := NewRateLimiter(1, 50*time.Millisecond, nil, logger.Discard())
	defer limiter.Stop()

	if !limiter.Allow("a") {
		t.Fatal("first request should be allowed")
	}
	if limiter.Allow("a") {
		t.Fatal("second request inside the window should be limited")
	}
	time.Sleep(80 * time.Millisecond)
	if !limiter.Allow("a") {
		t.Error("request after the window should be allowed")
	}
}

func TestRateLimit_Scoped(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute, nil, logger.Discard())
	defer limiter.Stop()

	handler := RateLimit(limiter, MatchRoute(http.MethodPost, "/api/v1/bookings"))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}),
	)

	send := func(method, path string) int {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send(http.MethodPost, "/api/v1/bookings"); code != http.StatusCreated {
		t.Fatalf("first intake = %d, want 201", code)
	}
	if code := send(http.MethodPost, "/api/v1/bookings"); code != http.StatusTooManyRequests {
		t.Fatalf("second intake = %d, want 429", code)
	}
	if code := send(http.MethodGet, "/api/v1/bookings"); code != http.StatusCreated {
		t.Errorf("unscoped route should pass through, got %d", code)
	}
	if code := send(http.MethodPost, "/api/v1/reels"); code != http.StatusCreated {
		t.Errorf("unscoped route should pass through, got %d", code)
	}
}

func TestRateLimit_RotatingForwardedForIsStillLimited(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute, nil, logger.Discard())
	defer limiter.Stop()

	handler := RateLimit(limiter, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
		req.RemoteAddr = "198.51.100.4:40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		want := http.StatusTooManyRequests
		if i == 0 {
			want = http.StatusCreated
		}
		if rec.Code != want {
			t.Fatalf("request %d = %d, want %d", i, rec.Code, want)
		}
	}

	limiter.mu.Lock()
	keys := len(limiter.requests)
	limiter.mu.Unlock()
	if keys != 1 {
		t.Errorf("limiter tracks %d keys, want 1", keys)
	}
}

func TestRateLimit_TrustedProxyForwardsClient(t *testing.T) {
	trusted, err := httputil.ParseTrustedProxies([]string{"10.0.0.0/8"})
	if err != nil {
		t.Fatal(err)
	}
	limiter := NewRateLimiter(1, time.Minute, ClientIPExtractor(trusted), logger.Discard())
	defer limiter.Stop()

	handler := RateLimit(limiter, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	send := func(client string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
		req.RemoteAddr = "10.0.0.2:40000"
		req.Header.Set("X-Forwarded-For", client)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("203.0.113.1"); code != http.StatusCreated {
		t.Fatalf("first client = %d", code)
	}
	if code := send("203.0.113.2"); code != http.StatusCreated {
		t.Errorf("second client behind the same proxy = %d, want 201", code)
	}
	if code := send("203.0.113.1"); code != http.StatusTooManyRequests {
		t.Errorf("repeat client = %d, want 429", code)
	}
}

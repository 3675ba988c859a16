package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	httputil "dreamshoots/pkg/http"
	"dreamshoots/pkg/logger"
)

// KeyExtractor returns the identity a request is counted against.
type KeyExtractor func(r *http.Request) string

// RateLimiter is a sliding-window limiter keyed by caller identity.
type RateLimiter struct {
	mu        sync.Mutex
	requests  map[string][]time.Time
	limit     int
	window    time.Duration
	extractor KeyExtractor
	log       *logger.Logger
	stopCh    chan struct{}
	stopOnce  sync.Once
}

func NewRateLimiter(limit int, window time.Duration, extractor KeyExtractor, log *logger.Logger) *RateLimiter {
	if extractor == nil {
		extractor = ClientIPExtractor(nil)
	}

	limiter := &RateLimiter{
		requests:  make(map[string][]time.Time),
		limit:     limit,
		window:    window,
		extractor: extractor,
		log:       log,
		stopCh:    make(chan struct{}),
	}

	go limiter.cleanup()

	return limiter
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for key, timestamps := range rl.requests {
				if len(timestamps) == 0 || time.Since(timestamps[len(timestamps)-1]) > rl.window {
					delete(rl.requests, key)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Allow records a request for key and reports whether it fits in the window.
func (rl *RateLimiter) Allow(key string) bool {
	if key == "" {
		return true
	}

	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	timestamps := rl.requests[key]
	valid := timestamps[:0]
	for _, ts := range timestamps {
		if now.Sub(ts) < rl.window {
			valid = append(valid, ts)
		}
	}

	if len(valid) >= rl.limit {
		rl.requests[key] = valid
		return false
	}

	rl.requests[key] = append(valid, now)
	return true
}

// RateLimit applies limiter to the requests accepted by scope.
func RateLimit(limiter *RateLimiter, scope RequestMatcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !matches(scope, r) {
				next.ServeHTTP(w, r)
				return
			}

			key := limiter.extractor(r)
			if !limiter.Allow(key) {
				rejectRateLimited(w, limiter, r, key)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rejectRateLimited(w http.ResponseWriter, limiter *RateLimiter, r *http.Request, key string) {
	limiter.log.Warn("Rate limit exceeded",
		"request_id", RequestID(r),
		"client", key,
		"path", r.URL.Path,
	)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", retryAfterSeconds(limiter.window))
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.Write([]byte(`{"error":"Rate limit exceeded","code":"TOO_MANY_REQUESTS"}`))
}

func retryAfterSeconds(window time.Duration) string {
	secs := int(window.Seconds())
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// ClientIPExtractor keys requests by client address, trusting forwarding
// headers only from the given proxies.
func ClientIPExtractor(trusted httputil.TrustedProxies) KeyExtractor {
	return func(r *http.Request) string {
		return httputil.ClientIP(r, trusted)
	}
}

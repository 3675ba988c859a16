package middleware

import (
	"net/http"
	"strings"
)

const corsMaxAge = "600"

// CORS answers preflight requests and decorates responses for allowed
// origins. A "*" entry allows any origin; credentials are never combined
// with a wildcard.
func CORS(origins []string, allowCredentials bool, extraHeaders ...string) func(http.Handler) http.Handler {
	allowAll := false
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			allowAll = true
			continue
		}
		allowed[strings.TrimSuffix(o, "/")] = true
	}

	allowHeaders := strings.Join(append([]string{
		"Content-Type",
		DefaultIdempotencyHeader,
		RequestIDHeader,
	}, extraHeaders...), ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")

			switch {
			case allowed[origin]:
				h.Set("Access-Control-Allow-Origin", origin)
				if allowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			case allowAll:
				h.Set("Access-Control-Allow-Origin", "*")
			default:
				next.ServeHTTP(w, r)
				return
			}
			h.Set("Access-Control-Expose-Headers", RequestIDHeader+", Content-Disposition")

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
				h.Set("Access-Control-Allow-Headers", allowHeaders)
				h.Set("Access-Control-Max-Age", corsMaxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

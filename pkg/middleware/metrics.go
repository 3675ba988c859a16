package middleware

import "net/http"

// HTTPMetrics reports every completed request to record.
func HTTPMetrics(record func(method string, status int)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r)
			record(r.Method, wrapped.statusCode)
		})
	}
}

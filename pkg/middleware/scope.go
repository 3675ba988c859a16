package middleware

import (
	"net/http"
	"strings"
)

// RequestMatcher selects the requests a scoped middleware applies to.
type RequestMatcher func(r *http.Request) bool

// MatchRoute matches an exact method and path, ignoring a trailing slash.
func MatchRoute(method, path string) RequestMatcher {
	path = strings.TrimSuffix(path, "/")
	return func(r *http.Request) bool {
		return r.Method == method && strings.TrimSuffix(r.URL.Path, "/") == path
	}
}

func matches(scope RequestMatcher, r *http.Request) bool {
	return scope == nil || scope(r)
}

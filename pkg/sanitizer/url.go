package sanitizer

import (
	"net/url"
	"strings"
)

// NormalizeURL trims raw and lowercases its scheme and host. Paths are case
// sensitive for media links and are left as given. Unparseable input is
// returned trimmed.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	return u.String()
}

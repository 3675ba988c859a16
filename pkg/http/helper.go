package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	apperrors "dreamshoots/pkg/errors"
)

// DecodeJSON decodes a single JSON object from the request body into dst.
// Unknown fields are ignored; the public booking form posts extra keys.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperrors.InvalidInput("Request body is required")
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return apperrors.InvalidInput("Request body too large")
		case errors.Is(err, io.EOF):
			return apperrors.InvalidInput("Request body is required")
		default:
			return apperrors.InvalidInput("Invalid request body")
		}
	}

	if dec.More() {
		return apperrors.InvalidInput("Request body must contain a single JSON object")
	}
	return nil
}

// TrustedProxies lists the peers allowed to report the client address in
// X-Forwarded-For or X-Real-IP.
type TrustedProxies []*net.IPNet

// ParseTrustedProxies accepts CIDR blocks and bare IPs.
func ParseTrustedProxies(entries []string) (TrustedProxies, error) {
	var out TrustedProxies
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				return nil, fmt.Errorf("invalid trusted proxy %q", entry)
			}
			bits := 128
			if ip.To4() != nil {
				ip, bits = ip.To4(), 32
			}
			out = append(out, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, network, err := net.ParseCIDR(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
		}
		out = append(out, network)
	}
	return out, nil
}

func (t TrustedProxies) Contains(ip net.IP) bool {
	if ip == nil {
		return false
	}
	for _, network := range t {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// ClientIP returns the address a request is attributed to. Forwarding headers
// are only honored when the direct peer is a trusted proxy; X-Forwarded-For
// is then walked right to left and the first untrusted hop wins, since every
// hop left of the last trusted proxy is client supplied.
func ClientIP(r *http.Request, trusted TrustedProxies) string {
	remote := remoteHost(r)
	if !trusted.Contains(net.ParseIP(remote)) {
		return remote
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		hops := strings.Split(fwd, ",")
		client := ""
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			ip := net.ParseIP(hop)
			if ip == nil {
				break
			}
			client = hop
			if !trusted.Contains(ip) {
				break
			}
		}
		if client != "" {
			return client
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(ip) != nil {
		return ip
	}
	return remote
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Package embed derives embeddable player links from Instagram post URLs.
package embed

import (
	"fmt"
	"net/url"
	"strings"
)

const DefaultTemplate = "https://www.instagram.com/p/%s/embed"

var mediaSegments = map[string]bool{
	"reels": true,
	"reel":  true,
	"p":     true,
	"tv":    true,
}

// ExtractID returns the media identifier that follows the first reels, reel,
// p or tv path segment. The identifier ends at the next "/", "?", "#" or "&"
// of the raw URL; percent-encoded characters stay encoded.
func ExtractID(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	path := raw
	if u, err := url.Parse(raw); err == nil {
		path = u.EscapedPath()
	} else if i := strings.IndexAny(raw, "?#"); i >= 0 {
		path = raw[:i]
	}

	segments := strings.Split(path, "/")
	for i := 0; i+1 < len(segments); i++ {
		if !mediaSegments[segments[i]] {
			continue
		}
		id, _, _ := strings.Cut(segments[i+1], "&")
		if id != "" {
			return id, true
		}
	}
	return "", false
}

type Embedder struct {
	template string
}

// New returns an Embedder using template, which must contain one %s verb.
// An empty template selects DefaultTemplate.
func New(template string) *Embedder {
	if template == "" {
		template = DefaultTemplate
	}
	return &Embedder{template: template}
}

func (e *Embedder) URL(raw string) (string, bool) {
	id, ok := ExtractID(raw)
	if !ok {
		return "", false
	}
	return fmt.Sprintf(e.template, id), true
}

// URL builds an embed link with DefaultTemplate.
func URL(raw string) (string, bool) {
	return New(DefaultTemplate).URL(raw)
}

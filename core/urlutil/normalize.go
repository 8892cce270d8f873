// ABOUTME: URL normalization for discovery inputs and candidate feed links
// ABOUTME: Resolves relative references, validates schemes, and builds dedup keys

package urlutil

import (
	"net/url"
	"strings"

	"rssminer/core/errors"
)

// Normalize parses raw into an absolute http(s) URL, resolving it against
// base when base is non-nil (feed links found in HTML are usually relative).
// Fragments are stripped; query strings are preserved.
func Normalize(raw string, base *url.URL) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, &errors.InvalidURLError{URL: raw, Reason: "empty URL"}
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, &errors.InvalidURLError{URL: raw, Reason: err.Error()}
	}

	if base != nil {
		parsed = base.ResolveReference(parsed)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &errors.InvalidURLError{URL: raw, Reason: "scheme must be http or https"}
	}

	if parsed.Host == "" {
		return nil, &errors.InvalidURLError{URL: raw, Reason: "missing host"}
	}

	parsed.Fragment = ""
	return parsed, nil
}

// DedupKey returns the identity key for a feed URL: scheme and host are
// case-insensitive, path and query are exact.
func DedupKey(u *url.URL) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(u.Scheme))
	b.WriteString("://")
	b.WriteString(strings.ToLower(u.Host))
	b.WriteString(u.EscapedPath())
	if u.RawQuery != "" {
		b.WriteString("?")
		b.WriteString(u.RawQuery)
	}
	return b.String()
}

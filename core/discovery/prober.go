// ABOUTME: Well-known path prober generates conventional feed locations
// ABOUTME: Used only when a page declares no feed links of its own

package discovery

import (
	"net/url"
	"strings"

	"rssminer/core/urlutil"
)

// wellKnownPaths are conventional feed locations tried against the site
// origin, in order. Probing is opportunistic and stops at the first hit.
var wellKnownPaths = []string{
	"/feed",
	"/feed.xml",
	"/rss",
	"/rss.xml",
	"/atom.xml",
	"/index.xml",
}

// probeCandidates returns the deterministic list of well-known feed URLs for
// base. Pure function, no I/O. Host-specific shortcuts (GitHub, Reddit) rank
// first because they are near-certain hits when they apply.
func probeCandidates(base *url.URL) []candidate {
	paths := hostShortcutPaths(base)
	paths = append(paths, wellKnownPaths...)

	// Platforms often serve section feeds at <path>/feed
	trimmed := strings.TrimRight(base.Path, "/")
	if trimmed != "" {
		paths = append(paths, trimmed+"/feed")
	}

	origin := &url.URL{Scheme: base.Scheme, Host: base.Host}
	candidates := make([]candidate, 0, len(paths))
	for _, path := range paths {
		probe, err := urlutil.Normalize(path, origin)
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{url: probe, priority: priorityDeclared})
	}

	return dedupeCandidates(candidates)
}

// hostShortcutPaths returns probe paths specific to hosts with predictable
// feed layouts that never declare them in HTML.
func hostShortcutPaths(base *url.URL) []string {
	host := strings.ToLower(base.Host)
	trimmed := strings.TrimRight(base.Path, "/")

	switch {
	case host == "github.com" || strings.HasSuffix(host, ".github.com"):
		if trimmed != "" {
			return []string{trimmed + "/commits.atom", trimmed + "/releases.atom"}
		}
	case host == "reddit.com" || strings.HasSuffix(host, ".reddit.com"):
		return []string{trimmed + "/.rss"}
	}

	return nil
}

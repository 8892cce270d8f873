// ABOUTME: HTML link extractor scans fetched pages for declared feed links
// ABOUTME: Finds head link rel=alternate elements and resolves their hrefs

package discovery

import (
	"bytes"
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"rssminer/core/urlutil"
)

// candidate is an unconfirmed feed URL awaiting classification
type candidate struct {
	url *url.URL

	// linkTitle is the title attribute of the declaring link element, if any
	linkTitle string

	// priority orders candidates for classification; lower classifies first.
	// Explicit rss/atom types rank above generic xml types; document order
	// breaks ties.
	priority int
}

const (
	priorityDeclared = iota
	priorityGenericXML
)

// maxDeclaredCandidates bounds how many declared links one page can queue
// for classification, so a hostile page cannot trigger unbounded fetches
const maxDeclaredCandidates = 16

// feedMIMETypes maps declared link types to candidate priorities
var feedMIMETypes = map[string]int{
	"application/rss+xml":  priorityDeclared,
	"application/atom+xml": priorityDeclared,
	"application/xml":      priorityGenericXML,
	"text/xml":             priorityGenericXML,
}

// extractFeedLinks scans HTML for link rel=alternate feed declarations and
// returns candidates in priority order. Malformed fragments are skipped;
// a bad tag never fails the whole extraction.
func extractFeedLinks(body []byte, contentType string, base *url.URL) []candidate {
	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		// Undecodable charset declarations fall back to the raw bytes
		reader = bytes.NewReader(body)
	}

	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil
	}

	// net/html hoists stray pre-body link elements into head, so a plain
	// link selector tolerates unclosed-head markup without losing order
	var candidates []candidate
	doc.Find("link").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if c, ok := linkToCandidate(s, base); ok {
			candidates = append(candidates, c)
		}
		return len(candidates) < maxDeclaredCandidates
	})

	// Stable sort keeps document order within each priority band
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].priority < candidates[j].priority
	})

	return dedupeCandidates(candidates)
}

// linkToCandidate converts one link element into a candidate, if it declares
// a feed type this engine recognizes.
func linkToCandidate(s *goquery.Selection, base *url.URL) (candidate, bool) {
	if !hasAlternateRel(s.AttrOr("rel", "")) {
		return candidate{}, false
	}

	mimeType := strings.ToLower(strings.TrimSpace(s.AttrOr("type", "")))
	priority, ok := feedMIMETypes[mimeType]
	if !ok {
		return candidate{}, false
	}

	href := strings.TrimSpace(s.AttrOr("href", ""))
	if href == "" {
		return candidate{}, false
	}

	resolved, err := urlutil.Normalize(href, base)
	if err != nil {
		return candidate{}, false
	}

	return candidate{
		url:       resolved,
		linkTitle: strings.TrimSpace(s.AttrOr("title", "")),
		priority:  priority,
	}, true
}

// hasAlternateRel reports whether a rel attribute value contains the
// "alternate" token, case-insensitively.
func hasAlternateRel(rel string) bool {
	for _, token := range strings.Fields(rel) {
		if strings.EqualFold(token, "alternate") {
			return true
		}
	}
	return false
}

// dedupeCandidates drops candidates whose URL repeats an earlier one
func dedupeCandidates(candidates []candidate) []candidate {
	seen := make(map[string]struct{}, len(candidates))
	result := candidates[:0]
	for _, c := range candidates {
		key := urlutil.DedupKey(c.url)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, c)
	}
	return result
}

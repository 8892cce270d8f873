// ABOUTME: Public types exposed by the RSS Miner library
// ABOUTME: Mirrors the core domain models with host-interop friendly shapes

package rssminer

import (
	"rssminer/core/domain"
)

// FeedType identifies the syndication format of a discovered feed
type FeedType string

const (
	// FeedTypeRSS covers RSS 2.0 and RDF-based RSS documents
	FeedTypeRSS FeedType = "rss"

	// FeedTypeAtom covers Atom documents
	FeedTypeAtom FeedType = "atom"
)

// Feed represents a confirmed feed discovered from a web page
type Feed struct {
	// Title is the feed's title; empty when the feed declares none
	Title string `json:"title"`

	// URL is the absolute URL of the feed document
	URL string `json:"url"`

	// HTMLURL is the URL of the human-readable site
	HTMLURL string `json:"html_url"`

	// FeedType is "rss" or "atom"
	FeedType FeedType `json:"feed_type"`
}

// ToDict returns a field-map view of the feed for host-language interop
func (f *Feed) ToDict() map[string]string {
	return map[string]string{
		"title":     f.Title,
		"url":       f.URL,
		"html_url":  f.HTMLURL,
		"feed_type": string(f.FeedType),
	}
}

// Status reports the outcome of discovery for one input URL
type Status struct {
	// URL is the input URL as given
	URL string `json:"url"`

	// Succeeded is true when at least one feed was found
	Succeeded bool `json:"succeeded"`

	// Error describes the failure; empty on success
	Error string `json:"error,omitempty"`
}

// feedFromDomain converts a core domain feed to the public type
func feedFromDomain(feed domain.Feed) Feed {
	feedType := FeedTypeRSS
	if feed.Type == domain.FeedTypeAtom {
		feedType = FeedTypeAtom
	}
	return Feed{
		Title:    feed.Title,
		URL:      feed.URL,
		HTMLURL:  feed.HTMLURL,
		FeedType: feedType,
	}
}

// feedToDomain converts a public feed back to the core domain type
func feedToDomain(feed Feed) domain.Feed {
	feedType := domain.FeedTypeRSS
	if feed.FeedType == FeedTypeAtom {
		feedType = domain.FeedTypeAtom
	}
	return domain.Feed{
		Title:   feed.Title,
		URL:     feed.URL,
		HTMLURL: feed.HTMLURL,
		Type:    feedType,
	}
}

// statusFromDomain converts a core discovery status to the public type
func statusFromDomain(status domain.DiscoveryStatus) Status {
	return Status{
		URL:       status.URL,
		Succeeded: status.Succeeded(),
		Error:     status.Error,
	}
}

// ABOUTME: Feed domain model represents a discovered RSS/Atom feed
// ABOUTME: Provides the closed feed-type enumeration and validation logic

package domain

import (
	"errors"
	"net/url"
)

// FeedType identifies the syndication format of a discovered feed.
type FeedType int

const (
	// FeedTypeRSS covers RSS 2.0 and RDF-based RSS 0.9x/1.0 documents
	FeedTypeRSS FeedType = iota

	// FeedTypeAtom covers Atom documents
	FeedTypeAtom
)

// String returns the canonical lowercase name of the feed type
func (t FeedType) String() string {
	switch t {
	case FeedTypeAtom:
		return "atom"
	default:
		return "rss"
	}
}

// Feed represents a confirmed RSS or Atom feed reachable from a web page
type Feed struct {
	// Title is the human-readable title of the feed (may be empty)
	Title string

	// URL is the absolute, normalized URL of the feed document
	URL string

	// HTMLURL is the URL of the human-readable site the feed belongs to
	HTMLURL string

	// Type is the syndication format of the feed
	Type FeedType
}

// Validate checks if the feed has valid required fields
func (f *Feed) Validate() error {
	if f.URL == "" {
		return errors.New("feed URL cannot be empty")
	}

	parsed, err := url.Parse(f.URL)
	if err != nil || !parsed.IsAbs() {
		return errors.New("feed URL must be an absolute URL")
	}

	if f.Type != FeedTypeRSS && f.Type != FeedTypeAtom {
		return errors.New("feed type must be rss or atom")
	}

	return nil
}

// ToDict returns a field-map view of the feed for host-language interop
func (f *Feed) ToDict() map[string]string {
	return map[string]string{
		"title":     f.Title,
		"url":       f.URL,
		"html_url":  f.HTMLURL,
		"feed_type": f.Type.String(),
	}
}

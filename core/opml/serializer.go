// ABOUTME: OPML serializer renders discovered feeds as an OPML 2.0 document
// ABOUTME: Supports filtering by feed type and deduplicates by feed URL

package opml

import (
	"encoding/xml"
	"io"
	"os"

	"rssminer/core/domain"
)

// Filter selects which feed types appear in the serialized document
type Filter int

const (
	// FilterAll keeps every feed
	FilterAll Filter = iota

	// FilterRSSOnly keeps only RSS feeds
	FilterRSSOnly

	// FilterAtomOnly keeps only Atom feeds
	FilterAtomOnly
)

type document struct {
	XMLName xml.Name `xml:"opml"`
	Version string   `xml:"version,attr"`
	Head    head     `xml:"head"`
	Body    body     `xml:"body"`
}

type head struct {
	Title string `xml:"title"`
}

type body struct {
	Outlines []outline `xml:"outline"`
}

type outline struct {
	Text    string `xml:"text,attr"`
	Title   string `xml:"title,attr"`
	Type    string `xml:"type,attr"`
	XMLURL  string `xml:"xmlUrl,attr"`
	HTMLURL string `xml:"htmlUrl,attr"`
}

// Serialize renders the feeds passing the filter as an OPML 2.0 XML string.
// Output order follows input order and repeated feed URLs collapse to their
// first occurrence, so serialization is deterministic and diff-stable.
// All textual fields are XML-escaped by the marshaller.
func Serialize(feeds []domain.Feed, filter Filter) (string, error) {
	doc := document{
		Version: "2.0",
		Head:    head{Title: headTitle(filter)},
		Body:    body{Outlines: []outline{}},
	}

	seen := make(map[string]struct{}, len(feeds))
	for _, feed := range feeds {
		if !filter.matches(feed.Type) {
			continue
		}
		if _, dup := seen[feed.URL]; dup {
			continue
		}
		seen[feed.URL] = struct{}{}

		text := feed.Title
		if text == "" {
			text = feed.URL
		}

		doc.Body.Outlines = append(doc.Body.Outlines, outline{
			Text:    text,
			Title:   text,
			Type:    "rss",
			XMLURL:  feed.URL,
			HTMLURL: feed.HTMLURL,
		})
	}

	marshaled, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	return xml.Header + string(marshaled) + "\n", nil
}

// Write serializes the feeds passing the filter and writes the document to w
func Write(w io.Writer, feeds []domain.Feed, filter Filter) error {
	serialized, err := Serialize(feeds, filter)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, serialized)
	return err
}

// WriteFile serializes the feeds passing the filter into the file at path
func WriteFile(path string, feeds []domain.Feed, filter Filter) error {
	serialized, err := Serialize(feeds, filter)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(serialized), 0o644)
}

// matches reports whether a feed type passes the filter
func (f Filter) matches(t domain.FeedType) bool {
	switch f {
	case FilterRSSOnly:
		return t == domain.FeedTypeRSS
	case FilterAtomOnly:
		return t == domain.FeedTypeAtom
	default:
		return true
	}
}

// headTitle returns the document title for the filter
func headTitle(f Filter) string {
	if f == FilterAtomOnly {
		return "Atom Feeds"
	}
	return "RSS Feeds"
}

// ABOUTME: OPML export wrappers over the core serializer
// ABOUTME: Writes subscription lists to streams or files, optionally filtered

package rssminer

import (
	"io"

	"rssminer/core/domain"
	"rssminer/core/opml"
)

// CreateOPML writes all feeds to w as an OPML subscription list
func CreateOPML(w io.Writer, feeds []Feed) error {
	return writeOPML(w, feeds, opml.FilterAll)
}

// CreateOPMLRSSOnly writes only the RSS feeds to w
func CreateOPMLRSSOnly(w io.Writer, feeds []Feed) error {
	return writeOPML(w, feeds, opml.FilterRSSOnly)
}

// CreateOPMLAtomOnly writes only the Atom feeds to w
func CreateOPMLAtomOnly(w io.Writer, feeds []Feed) error {
	return writeOPML(w, feeds, opml.FilterAtomOnly)
}

// CreateOPMLFile writes all feeds to the file at path
func CreateOPMLFile(path string, feeds []Feed) error {
	return writeOPMLFile(path, feeds, opml.FilterAll)
}

// CreateOPMLFileRSSOnly writes only the RSS feeds to the file at path
func CreateOPMLFileRSSOnly(path string, feeds []Feed) error {
	return writeOPMLFile(path, feeds, opml.FilterRSSOnly)
}

// CreateOPMLFileAtomOnly writes only the Atom feeds to the file at path
func CreateOPMLFileAtomOnly(path string, feeds []Feed) error {
	return writeOPMLFile(path, feeds, opml.FilterAtomOnly)
}

// SerializeOPML renders the feeds passing the filter as an OPML XML string
func SerializeOPML(feeds []Feed, filter opml.Filter) (string, error) {
	return opml.Serialize(toDomain(feeds), filter)
}

func writeOPML(w io.Writer, feeds []Feed, filter opml.Filter) error {
	if err := opml.Write(w, toDomain(feeds), filter); err != nil {
		return NewError(ErrorTypeIO, "failed to write OPML").WithCause(err)
	}
	return nil
}

func writeOPMLFile(path string, feeds []Feed, filter opml.Filter) error {
	if err := opml.WriteFile(path, toDomain(feeds), filter); err != nil {
		return NewError(ErrorTypeIO, "failed to write OPML file").WithCause(err)
	}
	return nil
}

func toDomain(feeds []Feed) []domain.Feed {
	converted := make([]domain.Feed, len(feeds))
	for i, feed := range feeds {
		converted[i] = feedToDomain(feed)
	}
	return converted
}

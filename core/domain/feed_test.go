package domain

import (
	"testing"
)

func TestFeedTypeString(t *testing.T) {
	if FeedTypeRSS.String() != "rss" {
		t.Errorf("FeedTypeRSS.String() = %q, want %q", FeedTypeRSS.String(), "rss")
	}
	if FeedTypeAtom.String() != "atom" {
		t.Errorf("FeedTypeAtom.String() = %q, want %q", FeedTypeAtom.String(), "atom")
	}
}

func TestFeedValidate_Valid(t *testing.T) {
	feed := Feed{
		Title:   "Example",
		URL:     "https://example.com/feed.xml",
		HTMLURL: "https://example.com",
		Type:    FeedTypeRSS,
	}

	if err := feed.Validate(); err != nil {
		t.Errorf("Validate returned error for valid feed: %v", err)
	}
}

func TestFeedValidate_EmptyTitleAllowed(t *testing.T) {
	feed := Feed{
		URL:  "https://example.com/feed.xml",
		Type: FeedTypeAtom,
	}

	if err := feed.Validate(); err != nil {
		t.Errorf("Validate should allow empty title, got error: %v", err)
	}
}

func TestFeedValidate_EmptyURL(t *testing.T) {
	feed := Feed{Title: "Example", Type: FeedTypeRSS}

	if err := feed.Validate(); err == nil {
		t.Error("Validate should return error for empty URL")
	}
}

func TestFeedValidate_RelativeURL(t *testing.T) {
	feed := Feed{URL: "/feed.xml", Type: FeedTypeRSS}

	if err := feed.Validate(); err == nil {
		t.Error("Validate should return error for relative URL")
	}
}

func TestFeedToDict(t *testing.T) {
	feed := Feed{
		Title:   "Example",
		URL:     "https://example.com/feed.xml",
		HTMLURL: "https://example.com",
		Type:    FeedTypeAtom,
	}

	dict := feed.ToDict()

	if dict["title"] != "Example" {
		t.Errorf("dict[title] = %q, want %q", dict["title"], "Example")
	}
	if dict["url"] != "https://example.com/feed.xml" {
		t.Errorf("dict[url] = %q, want %q", dict["url"], "https://example.com/feed.xml")
	}
	if dict["html_url"] != "https://example.com" {
		t.Errorf("dict[html_url] = %q, want %q", dict["html_url"], "https://example.com")
	}
	if dict["feed_type"] != "atom" {
		t.Errorf("dict[feed_type] = %q, want %q", dict["feed_type"], "atom")
	}
}

func TestDiscoveryStatusSucceeded(t *testing.T) {
	ok := DiscoveryStatus{URL: "https://a.com", Outcome: OutcomeSucceeded}
	failed := DiscoveryStatus{URL: "https://b.com", Outcome: OutcomeFailed, Error: "no feed found"}

	if !ok.Succeeded() {
		t.Error("Succeeded() should be true for OutcomeSucceeded")
	}
	if failed.Succeeded() {
		t.Error("Succeeded() should be false for OutcomeFailed")
	}
}

func TestDiscoveryOutcomeString(t *testing.T) {
	if OutcomeSucceeded.String() != "succeeded" {
		t.Errorf("OutcomeSucceeded.String() = %q", OutcomeSucceeded.String())
	}
	if OutcomeFailed.String() != "failed" {
		t.Errorf("OutcomeFailed.String() = %q", OutcomeFailed.String())
	}
}

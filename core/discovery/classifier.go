// ABOUTME: Feed classifier fetches a candidate URL and confirms it is a feed
// ABOUTME: Sniffs the document root for RSS vs Atom and extracts title/site URL

package discovery

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"rssminer/core/domain"
	"rssminer/core/errors"
	"rssminer/core/urlutil"
)

// errCacheMiss signals that the classification cache had nothing usable
var errCacheMiss = stderrors.New("cache miss")

// maxFeedBodyBytes caps how much of a candidate document is read. Feed
// documents fit well inside this; anything larger is not worth classifying.
const maxFeedBodyBytes = 10 << 20

// cacheTTL keeps classification results for the remainder of a batch run
const cacheTTL = 15 * time.Minute

// cachedClassification is the cache record for one candidate URL. NotAFeed
// marks a confirmed miss so repeat candidates skip the refetch either way.
type cachedClassification struct {
	Feed     *domain.Feed `json:"feed,omitempty"`
	NotAFeed bool         `json:"not_a_feed,omitempty"`
}

// classify fetches a candidate and returns a confirmed Feed, or an error
// describing why the candidate was rejected. origin is the input URL that
// started discovery; it becomes the site URL when the feed declares none.
func (s *Service) classify(ctx context.Context, c candidate, origin *url.URL) (*domain.Feed, error) {
	key := "classify:" + urlutil.DedupKey(c.url)

	if feed, err := s.cachedResult(ctx, key, c.url.String()); err == nil {
		return feed, nil
	} else if errors.IsNotAFeed(err) {
		return nil, err
	}

	fetched, err := s.fetch(ctx, c.url.String())
	if err != nil {
		return nil, err
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(fetched.body))
	if err != nil {
		s.cacheResult(ctx, key, cachedClassification{NotAFeed: true})
		return nil, &errors.NotAFeedError{URL: c.url.String()}
	}

	feedType, ok := detectType(parsed)
	if !ok {
		s.cacheResult(ctx, key, cachedClassification{NotAFeed: true})
		return nil, &errors.NotAFeedError{URL: c.url.String()}
	}

	feedURL := c.url
	if normalized, err := urlutil.Normalize(fetched.finalURL, nil); err == nil {
		feedURL = normalized
	}

	feed := &domain.Feed{
		Title:   feedTitle(parsed, c.linkTitle, origin),
		URL:     feedURL.String(),
		HTMLURL: siteURL(parsed, feedURL, origin),
		Type:    feedType,
	}

	s.cacheResult(ctx, key, cachedClassification{Feed: feed})
	return feed, nil
}

// detectType maps gofeed's parsed feed to the closed FeedType enumeration.
// RDF-based RSS 0.9x/1.0 documents come back from gofeed as "rss" and are
// treated as RSS. JSON Feed documents are rejected.
func detectType(parsed *gofeed.Feed) (domain.FeedType, bool) {
	switch parsed.FeedType {
	case "rss":
		return domain.FeedTypeRSS, true
	case "atom":
		return domain.FeedTypeAtom, true
	default:
		return domain.FeedTypeRSS, false
	}
}

// feedTitle picks the feed document title, falling back to the declaring
// link's title attribute, then the origin host name.
func feedTitle(parsed *gofeed.Feed, linkTitle string, origin *url.URL) string {
	if parsed.Title != "" {
		return parsed.Title
	}
	if linkTitle != "" {
		return linkTitle
	}
	if origin != nil {
		return origin.Hostname()
	}
	return ""
}

// siteURL resolves the feed's declared site link against the feed URL,
// defaulting to the origin page when the feed declares none.
func siteURL(parsed *gofeed.Feed, feedURL, origin *url.URL) string {
	if parsed.Link != "" {
		if resolved, err := urlutil.Normalize(parsed.Link, feedURL); err == nil {
			return resolved.String()
		}
	}
	if origin != nil {
		return origin.String()
	}
	return feedURL.String()
}

// fetchResult is one fetched document with the metadata discovery needs
type fetchResult struct {
	body        []byte
	finalURL    string
	contentType string
}

// fetch performs one rate-limited, timeout-guarded GET and reads the body
func (s *Service) fetch(ctx context.Context, rawURL string) (*fetchResult, error) {
	if s.config.Limiter != nil {
		if err := s.config.Limiter.Wait(ctx); err != nil {
			return nil, &errors.TimeoutError{URL: rawURL}
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.config.FetchTimeout)
	defer cancel()

	resp, err := s.deps.HTTPClient.Get(fetchCtx, rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxFeedBodyBytes))
	if err != nil {
		return nil, &errors.NetworkError{URL: rawURL, Cause: err}
	}

	return &fetchResult{
		body:        body,
		finalURL:    resp.FinalURL(),
		contentType: resp.Header("Content-Type"),
	}, nil
}

// cachedResult looks up a prior classification for the key. A nil error
// carries a confirmed feed; NotAFeedError a confirmed miss; any other error
// means the cache has nothing usable.
func (s *Service) cachedResult(ctx context.Context, key, candidateURL string) (*domain.Feed, error) {
	if s.deps.Cache == nil {
		return nil, errCacheMiss
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil, errCacheMiss
	}

	var record cachedClassification
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errCacheMiss
	}

	if record.NotAFeed {
		return nil, &errors.NotAFeedError{URL: candidateURL}
	}
	if record.Feed == nil {
		return nil, errCacheMiss
	}
	return record.Feed, nil
}

// cacheResult stores a classification outcome, ignoring cache errors
func (s *Service) cacheResult(ctx context.Context, key string, record cachedClassification) {
	if s.deps.Cache == nil {
		return
	}
	data, err := json.Marshal(record)
	if err != nil {
		return
	}
	_ = s.deps.Cache.Set(ctx, key, data, cacheTTL)
}

// ABOUTME: Discovery service runs the per-URL feed discovery pipeline
// ABOUTME: Orchestrates many input URLs under a bounded worker pool

package discovery

import (
	"context"
	"fmt"
	"net/url"
	"runtime"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"rssminer/core/domain"
	"rssminer/core/errors"
	"rssminer/core/interfaces"
	"rssminer/core/urlutil"
)

// Config holds tunables for the discovery service
type Config struct {
	// Concurrency is the worker pool size for batch discovery
	Concurrency int

	// FetchTimeout bounds each individual HTTP fetch
	FetchTimeout time.Duration

	// Limiter, when non-nil, paces every outbound request
	Limiter *rate.Limiter
}

// DefaultConfig returns the default discovery configuration
func DefaultConfig() Config {
	return Config{
		Concurrency:  runtime.GOMAXPROCS(0),
		FetchTimeout: 10 * time.Second,
	}
}

// Service implements feed discovery over injected dependencies
type Service struct {
	deps   interfaces.Dependencies
	config Config
}

// NewService creates a new discovery service instance. A non-positive
// concurrency or fetch timeout is a caller contract violation and fails
// immediately, before any work begins.
func NewService(deps interfaces.Dependencies, config Config) (*Service, error) {
	if config.Concurrency < 0 {
		return nil, fmt.Errorf("concurrency must not be negative, got %d", config.Concurrency)
	}
	if config.Concurrency == 0 {
		config.Concurrency = DefaultConfig().Concurrency
	}
	if config.FetchTimeout < 0 {
		return nil, fmt.Errorf("fetch timeout must not be negative, got %s", config.FetchTimeout)
	}
	if config.FetchTimeout == 0 {
		config.FetchTimeout = DefaultConfig().FetchTimeout
	}
	if deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	return &Service{deps: deps, config: config}, nil
}

// DiscoverSite runs the full discovery pipeline for a single input URL and
// returns every confirmed feed, deduplicated by feed URL. Declared links are
// exhaustively classified; well-known paths are probed only as a fallback
// and stop at the first hit.
func (s *Service) DiscoverSite(ctx context.Context, rawURL string) ([]domain.Feed, error) {
	origin, err := urlutil.Normalize(rawURL, nil)
	if err != nil {
		return nil, err
	}

	page, err := s.fetch(ctx, origin.String())
	if err != nil {
		return nil, err
	}

	// The post-redirect URL is the base for resolving relative feed links
	base := origin
	if resolved, err := urlutil.Normalize(page.finalURL, nil); err == nil {
		base = resolved
	}

	declared := extractFeedLinks(page.body, page.contentType, base)
	feeds := s.classifyAll(ctx, declared, origin, false)

	if len(feeds) == 0 {
		feeds = s.classifyAll(ctx, probeCandidates(base), origin, true)
	}

	if len(feeds) == 0 {
		return nil, &errors.NoFeedFoundError{URL: rawURL}
	}

	return feeds, nil
}

// classifyAll classifies candidates in priority order, collecting every
// success. When stopAtFirstHit is set, classification stops once any
// candidate confirms, to bound request volume while probing.
func (s *Service) classifyAll(ctx context.Context, candidates []candidate, origin *url.URL, stopAtFirstHit bool) []domain.Feed {
	seen := make(map[string]struct{}, len(candidates))
	var feeds []domain.Feed

	for _, c := range candidates {
		feed, err := s.classify(ctx, c, origin)
		if err != nil {
			s.logDebug("candidate rejected", map[string]interface{}{
				"url":   c.url.String(),
				"error": err.Error(),
			})
			continue
		}

		parsed, err := url.Parse(feed.URL)
		if err != nil {
			continue
		}
		key := urlutil.DedupKey(parsed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		feeds = append(feeds, *feed)

		if stopAtFirstHit {
			break
		}
	}

	return feeds
}

// DiscoverAll fans the discovery pipeline out across many input URLs under a
// bounded worker pool. Each URL's pipeline is fully isolated: one URL's
// failure never aborts or delays the others. Returned feeds are the union of
// all per-URL results deduplicated globally by feed URL; statuses preserve
// the input order regardless of completion order. The observer, when non-nil,
// is notified as each URL completes, serialized so notifications never
// interleave.
func (s *Service) DiscoverAll(ctx context.Context, urls []string, observer interfaces.ProgressObserver) ([]domain.Feed, []domain.DiscoveryStatus, error) {
	if len(urls) == 0 {
		return []domain.Feed{}, []domain.DiscoveryStatus{}, nil
	}

	type urlResult struct {
		feeds  []domain.Feed
		status domain.DiscoveryStatus
	}

	results := make([]urlResult, len(urls))
	semaphore := make(chan struct{}, s.config.Concurrency)
	var observerMu sync.Mutex
	var wg sync.WaitGroup

	for i, inputURL := range urls {
		wg.Add(1)
		go func(i int, inputURL string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			feeds, err := s.DiscoverSite(ctx, inputURL)
			status := domain.DiscoveryStatus{URL: inputURL, Outcome: domain.OutcomeSucceeded}
			if err != nil {
				status.Outcome = domain.OutcomeFailed
				status.Error = err.Error()
				s.logDebug("discovery failed", map[string]interface{}{
					"url":   inputURL,
					"error": err.Error(),
				})
			}
			results[i] = urlResult{feeds: feeds, status: status}

			if observer != nil {
				observerMu.Lock()
				observer.URLProcessed(inputURL, status.Succeeded(), len(feeds))
				observerMu.Unlock()
			}
		}(i, inputURL)
	}

	wg.Wait()

	statuses := make([]domain.DiscoveryStatus, len(urls))
	seen := make(map[string]struct{})
	var feeds []domain.Feed

	for i, result := range results {
		statuses[i] = result.status
		for _, feed := range result.feeds {
			parsed, err := url.Parse(feed.URL)
			if err != nil {
				continue
			}
			key := urlutil.DedupKey(parsed)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			feeds = append(feeds, feed)
		}
	}

	return feeds, statuses, nil
}

// logDebug logs through the injected logger when one is configured
func (s *Service) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

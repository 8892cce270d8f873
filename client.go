// ABOUTME: Main client for the RSS Miner library providing feed discovery
// ABOUTME: Offers find-feeds entry points and OPML export over the core engine

package rssminer

import (
	"context"

	"rssminer/core/discovery"
	"rssminer/core/interfaces"
)

// Client is the main entry point for the RSS Miner library
type Client struct {
	service *discovery.Service
	deps    interfaces.Dependencies
	config  Config
}

// NewClient creates a new RSS Miner client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	deps := interfaces.Dependencies{
		HTTPClient: config.HTTPClient,
		Cache:      config.Cache,
		Logger:     config.Logger,
	}

	service, err := discovery.NewService(deps, discovery.Config{
		Concurrency:  config.Concurrency,
		FetchTimeout: config.FetchTimeout,
		Limiter:      config.limiter(),
	})
	if err != nil {
		return nil, NewError(ErrorTypeConfiguration, "invalid discovery configuration").WithCause(err)
	}

	return &Client{
		service: service,
		deps:    deps,
		config:  config,
	}, nil
}

// FindFeeds discovers the feeds reachable from a single URL. It fails with
// an error when the URL is malformed or unreachable, or when no feed could
// be found.
func (c *Client) FindFeeds(ctx context.Context, url string) ([]Feed, error) {
	domainFeeds, err := c.service.DiscoverSite(ctx, url)
	if err != nil {
		return nil, boundaryError(err)
	}

	feeds := make([]Feed, len(domainFeeds))
	for i, feed := range domainFeeds {
		feeds[i] = feedFromDomain(feed)
	}
	return feeds, nil
}

// FindFeedsParallel discovers feeds for many URLs concurrently. Individual
// URL failures never surface as errors; they are reported in the returned
// statuses, which preserve the input order. When verbose is true, a progress
// line is logged as each URL completes.
func (c *Client) FindFeedsParallel(ctx context.Context, urls []string, verbose bool) ([]Feed, []Status, error) {
	var observer interfaces.ProgressObserver
	if verbose {
		observer = c.progressLogger()
	}
	return c.findFeedsParallel(ctx, urls, observer)
}

// FindFeedsParallelObserved is FindFeedsParallel with a caller-supplied
// progress observer. The observer may be nil.
func (c *Client) FindFeedsParallelObserved(ctx context.Context, urls []string, observer interfaces.ProgressObserver) ([]Feed, []Status, error) {
	return c.findFeedsParallel(ctx, urls, observer)
}

func (c *Client) findFeedsParallel(ctx context.Context, urls []string, observer interfaces.ProgressObserver) ([]Feed, []Status, error) {
	domainFeeds, domainStatuses, err := c.service.DiscoverAll(ctx, urls, observer)
	if err != nil {
		return nil, nil, NewError(ErrorTypeValidation, "batch discovery rejected").WithCause(err)
	}

	feeds := make([]Feed, len(domainFeeds))
	for i, feed := range domainFeeds {
		feeds[i] = feedFromDomain(feed)
	}

	statuses := make([]Status, len(domainStatuses))
	for i, status := range domainStatuses {
		statuses[i] = statusFromDomain(status)
	}

	return feeds, statuses, nil
}

// progressLogger reports per-URL completion through the configured logger
func (c *Client) progressLogger() interfaces.ProgressObserver {
	return interfaces.ProgressObserverFunc(func(url string, succeeded bool, feedCount int) {
		if c.deps.Logger == nil {
			return
		}
		fields := map[string]interface{}{
			"url":   url,
			"feeds": feedCount,
		}
		if succeeded {
			c.deps.Logger.Info("Processed URL", fields)
		} else {
			c.deps.Logger.Warn("No feeds for URL", fields)
		}
	})
}

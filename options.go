// ABOUTME: Configuration options for the RSS Miner library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package rssminer

import (
	"time"

	"golang.org/x/time/rate"

	"rssminer/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	// HTTPClient performs all outbound fetches
	HTTPClient interfaces.HTTPClient

	// Cache holds classification results for the life of the client
	Cache interfaces.Cache

	// Logger receives structured engine logs
	Logger interfaces.Logger

	// Concurrency is the batch worker pool size; 0 derives it from
	// available parallelism
	Concurrency int

	// FetchTimeout bounds each individual HTTP fetch
	FetchTimeout time.Duration

	// RequestsPerSecond caps outbound request rate; 0 disables pacing
	RequestsPerSecond float64
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		c.HTTPClient = client
		return nil
	}
}

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithConcurrency sets the batch worker pool size
func WithConcurrency(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewError(ErrorTypeConfiguration, "concurrency must not be negative")
		}
		c.Concurrency = n
		return nil
	}
}

// WithFetchTimeout sets the per-fetch timeout
func WithFetchTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout < 0 {
			return NewError(ErrorTypeConfiguration, "fetch timeout must not be negative")
		}
		c.FetchTimeout = timeout
		return nil
	}
}

// WithRateLimit caps the outbound request rate across all workers
func WithRateLimit(requestsPerSecond float64) Option {
	return func(c *Config) error {
		if requestsPerSecond < 0 {
			return NewError(ErrorTypeConfiguration, "requests per second must not be negative")
		}
		c.RequestsPerSecond = requestsPerSecond
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// limiter builds the shared rate limiter from the configured rate
func (c *Config) limiter() *rate.Limiter {
	if c.RequestsPerSecond <= 0 {
		return nil
	}
	burst := int(c.RequestsPerSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(c.RequestsPerSecond), burst)
}

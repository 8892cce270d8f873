// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package rssminer

import (
	"time"

	"rssminer/core/interfaces"
	"rssminer/infrastructure/cache/memory"
	httpinfra "rssminer/infrastructure/http/standard"
	loggerinfra "rssminer/infrastructure/logger/logrus"
)

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpinfra.NewStandardHTTPClient(30 * time.Second)
}

// DefaultCache creates a default in-memory classification cache
func DefaultCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultLogger creates a default logger that writes to stderr
func DefaultLogger() interfaces.Logger {
	return loggerinfra.NewLogger()
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		HTTPClient:   DefaultHTTPClient(),
		Cache:        DefaultCache(),
		Logger:       DefaultLogger(),
		Concurrency:  0, // derived from available parallelism
		FetchTimeout: 10 * time.Second,
	}
}

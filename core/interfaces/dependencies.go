// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the discovery engine

package interfaces

// Dependencies holds all external dependencies required by the discovery engine
type Dependencies struct {
	// HTTPClient provides HTTP request functionality
	HTTPClient HTTPClient

	// Cache provides the in-run classification cache
	Cache Cache

	// Logger provides structured logging
	Logger Logger
}

// ABOUTME: Custom error types for the feed discovery engine
// ABOUTME: Provides structured errors so pipelines can distinguish failure causes

package errors

import (
	"errors"
	"fmt"
)

// InvalidURLError represents a URL that could not be normalized
type InvalidURLError struct {
	URL    string
	Reason string
}

// Error implements the error interface
func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL '%s': %s", e.URL, e.Reason)
}

// NetworkError represents a connection or DNS failure
type NetworkError struct {
	URL   string
	Cause error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Cause)
}

// Unwrap returns the underlying cause
func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// TimeoutError represents a fetch that exceeded its deadline
type TimeoutError struct {
	URL string
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out fetching %s", e.URL)
}

// TooManyRedirectsError represents a redirect chain past the allowed bound
type TooManyRedirectsError struct {
	URL   string
	Limit int
}

// Error implements the error interface
func (e *TooManyRedirectsError) Error() string {
	return fmt.Sprintf("more than %d redirects fetching %s", e.Limit, e.URL)
}

// BadStatusError represents a non-2xx final HTTP status
type BadStatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *BadStatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.URL, e.StatusCode)
}

// NotAFeedError represents a candidate document that is not RSS or Atom
type NotAFeedError struct {
	URL string
}

// Error implements the error interface
func (e *NotAFeedError) Error() string {
	return fmt.Sprintf("%s is not an RSS or Atom feed", e.URL)
}

// NoFeedFoundError represents a page that yielded zero confirmed feeds
type NoFeedFoundError struct {
	URL string
}

// Error implements the error interface
func (e *NoFeedFoundError) Error() string {
	return fmt.Sprintf("no feed found for %s", e.URL)
}

// IsInvalidURL checks if an error is an InvalidURLError
func IsInvalidURL(err error) bool {
	var invalidErr *InvalidURLError
	return errors.As(err, &invalidErr)
}

// IsNetwork checks if an error is a NetworkError
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsTimeout checks if an error is a TimeoutError
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}

// IsTooManyRedirects checks if an error is a TooManyRedirectsError
func IsTooManyRedirects(err error) bool {
	var redirectErr *TooManyRedirectsError
	return errors.As(err, &redirectErr)
}

// IsBadStatus checks if an error is a BadStatusError
func IsBadStatus(err error) bool {
	var statusErr *BadStatusError
	return errors.As(err, &statusErr)
}

// IsNotAFeed checks if an error is a NotAFeedError
func IsNotAFeed(err error) bool {
	var feedErr *NotAFeedError
	return errors.As(err, &feedErr)
}

// IsNoFeedFound checks if an error is a NoFeedFoundError
func IsNoFeedFound(err error) bool {
	var noFeedErr *NoFeedFoundError
	return errors.As(err, &noFeedErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

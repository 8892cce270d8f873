// ABOUTME: Error types and handling for the RSS Miner library boundary
// ABOUTME: Provides structured errors with context for library operations

package rssminer

import (
	"fmt"

	coreerrors "rssminer/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates invalid caller input
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeNetwork indicates a connection, status, or redirect failure
	ErrorTypeNetwork ErrorType = "network"

	// ErrorTypeTimeout indicates a fetch exceeded its deadline
	ErrorTypeTimeout ErrorType = "timeout"

	// ErrorTypeNotFound indicates no feed could be found for a URL
	ErrorTypeNotFound ErrorType = "not_found"

	// ErrorTypeIO indicates a failure reading input or writing output
	ErrorTypeIO ErrorType = "io"

	// ErrorTypeConfiguration indicates an invalid client configuration
	ErrorTypeConfiguration ErrorType = "configuration"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// WithCause adds a cause to the error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrorTypeNotFound
	}
	return false
}

// IsNetworkError checks if an error is a network error
func IsNetworkError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrorTypeNetwork
	}
	return false
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == ErrorTypeValidation
	}
	return false
}

// boundaryError converts a core discovery error into the library's Error type
func boundaryError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case coreerrors.IsInvalidURL(err):
		return NewError(ErrorTypeValidation, "invalid URL").WithCause(err)
	case coreerrors.IsNoFeedFound(err):
		return NewError(ErrorTypeNotFound, "no feed found").WithCause(err)
	case coreerrors.IsTimeout(err):
		return NewError(ErrorTypeTimeout, "fetch timed out").WithCause(err)
	case coreerrors.IsNetwork(err), coreerrors.IsBadStatus(err), coreerrors.IsTooManyRedirects(err):
		return NewError(ErrorTypeNetwork, "fetch failed").WithCause(err)
	default:
		return NewError(ErrorTypeNetwork, "discovery failed").WithCause(err)
	}
}

package dayplan

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingBaseURL is returned when the base URL is empty.
	ErrMissingBaseURL = errors.New("base URL is required")

	// ErrInvalidTimeout is returned when the configured timeout is not positive.
	ErrInvalidTimeout = errors.New("timeout must be greater than zero")

	// ErrTimeout is returned when a request attempt exceeds the per-attempt
	// timeout or the caller's context is cancelled. Timeouts are never retried.
	ErrTimeout = errors.New("request timed out")
)

// APIError represents a non-2xx HTTP response from the Dayplan API.
//
// Message carries the normalized error text: the `error` field of the JSON
// error body when present, otherwise "HTTP <status>: <statusText>". Error()
// returns exactly that text so callers can match on server-supplied messages
// such as "Invalid API key".
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// TransportError represents a network-level failure (connection refused,
// DNS resolution, unexpected EOF) where no HTTP response was received.
// Transport errors are retried once; timeouts are classified separately.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// TimeoutError represents an attempt that exceeded its deadline or was
// cancelled by the caller.
type TimeoutError struct {
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %v", e.Timeout)
}

// Unwrap returns the underlying error.
func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

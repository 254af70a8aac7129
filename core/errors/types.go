// ABOUTME: Custom error types for the retrieval engine
// ABOUTME: Classifies network, timeout, parse and dispatch failures so callers can degrade gracefully

package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrNoAPIAvailable signals that the structured API adapter has no mapping
// for an address. It is internal: the engine falls back to extraction.
var ErrNoAPIAvailable = errors.New("no API available for this address")

// ErrCacheMiss is returned by content stores when a key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents an error from an external API
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// HTTPStatusError means a page was fetched but its status is not acceptable
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
}

// NetworkUnreachableError means a connection could not be established
type NetworkUnreachableError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *NetworkUnreachableError) Error() string {
	return fmt.Sprintf("network unreachable for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error
func (e *NetworkUnreachableError) Unwrap() error {
	return e.Err
}

// TimeoutError means a request did not complete within its deadline
type TimeoutError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("connection timeout fetching %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// ParseError wraps malformed input (JSON-LD, URLs) that extraction skips
type ParseError struct {
	What string
	Err  error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.What, e.Err)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnknownOperationError is returned when a caller names an operation that
// does not exist. It is the only failure that is not rendered as text.
type UnknownOperationError struct {
	Name string
}

// Error implements the error interface
func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsNoAPIAvailable checks if an error signals a missing API mapping
func IsNoAPIAvailable(err error) bool {
	return errors.Is(err, ErrNoAPIAvailable)
}

// IsCacheMiss checks if an error signals an absent or expired cache key
func IsCacheMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}

// IsUnknownOperation checks if an error is an UnknownOperationError
func IsUnknownOperation(err error) bool {
	var opErr *UnknownOperationError
	return errors.As(err, &opErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsHTTPStatus checks if an error is an HTTPStatusError
func IsHTTPStatus(err error) bool {
	var statusErr *HTTPStatusError
	return errors.As(err, &statusErr)
}

// IsNetworkUnreachable checks if an error is a NetworkUnreachableError
func IsNetworkUnreachable(err error) bool {
	var netErr *NetworkUnreachableError
	return errors.As(err, &netErr)
}

// IsTimeout reports whether err is a timeout: a TimeoutError, an expired
// context deadline, or a net.Error that reports Timeout().
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	var timeoutErr *TimeoutError
	if errors.As(err, &timeoutErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Classify wraps a raw transport error into TimeoutError or
// NetworkUnreachableError. Other errors are returned unchanged.
func Classify(url string, err error) error {
	if err == nil {
		return nil
	}
	if IsTimeout(err) {
		if isTyped[*TimeoutError](err) {
			return err
		}
		return &TimeoutError{URL: url, Err: err}
	}
	var opErr *net.OpError
	var dnsErr *net.DNSError
	if (errors.As(err, &opErr) || errors.As(err, &dnsErr)) && !isTyped[*NetworkUnreachableError](err) {
		return &NetworkUnreachableError{URL: url, Err: err}
	}
	return err
}

func isTyped[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

package classifier

import (
	"fmt"
)

// ErrorType represents the category of error that occurred during a
// classification call.
type ErrorType string

const (
	// ErrorTypeNetwork indicates a network-level error (connection refused, DNS, etc.)
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeRateLimit indicates the request was rejected due to rate limiting (HTTP 429)
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeServer indicates a server error (HTTP 5xx)
	ErrorTypeServer ErrorType = "server"
	// ErrorTypeClient indicates a client error (HTTP 4xx except 429)
	ErrorTypeClient ErrorType = "client"
	// ErrorTypeValidation indicates the response was received but could not be used
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeTimeout indicates the request timed out
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeUnknown indicates an error of unknown type
	ErrorTypeUnknown ErrorType = "unknown"
)

// ClassifyError represents a structured error from a classification call.
// When the pipeline sees one after retries are exhausted, the row is
// downgraded to the Unclassified sentinel rather than aborting the run.
type ClassifyError struct {
	Type       ErrorType
	Retryable  bool
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface.
func (e *ClassifyError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Type, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *ClassifyError) Unwrap() error {
	return e.Cause
}

// UnrecognizedSectorError reports a completion that parsed cleanly but
// named a label outside the fixed ten-sector enumeration. Row-local: the
// affected row becomes Unclassified and the run continues.
type UnrecognizedSectorError struct {
	Ticker string
	Label  string
}

// Error implements the error interface.
func (e *UnrecognizedSectorError) Error() string {
	return fmt.Sprintf("unrecognized sector %q for %s", e.Label, e.Ticker)
}

// NewNetworkError creates a network error.
func NewNetworkError(cause error) *ClassifyError {
	return &ClassifyError{
		Type:      ErrorTypeNetwork,
		Retryable: true,
		Message:   "network request failed",
		Cause:     cause,
	}
}

// NewRateLimitError creates a rate limit error.
func NewRateLimitError(statusCode int) *ClassifyError {
	return &ClassifyError{
		Type:       ErrorTypeRateLimit,
		Retryable:  true,
		StatusCode: statusCode,
		Message:    "rate limit exceeded",
	}
}

// NewServerError creates a server error.
func NewServerError(statusCode int) *ClassifyError {
	return &ClassifyError{
		Type:       ErrorTypeServer,
		Retryable:  true,
		StatusCode: statusCode,
		Message:    "completion service returned an error",
	}
}

// NewClientError creates a client error.
func NewClientError(statusCode int, message string) *ClassifyError {
	return &ClassifyError{
		Type:       ErrorTypeClient,
		Retryable:  false,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewValidationError creates a validation error.
func NewValidationError(message string) *ClassifyError {
	return &ClassifyError{
		Type:      ErrorTypeValidation,
		Retryable: false,
		Message:   message,
	}
}

// NewTimeoutError creates a timeout error.
func NewTimeoutError(cause error) *ClassifyError {
	return &ClassifyError{
		Type:      ErrorTypeTimeout,
		Retryable: true,
		Message:   "request timed out",
		Cause:     cause,
	}
}

// ClassifyHTTPError classifies an HTTP status code into an appropriate ClassifyError.
func ClassifyHTTPError(statusCode int) *ClassifyError {
	switch {
	case statusCode == 429:
		return NewRateLimitError(statusCode)
	case statusCode >= 500:
		return NewServerError(statusCode)
	case statusCode >= 400:
		return NewClientError(statusCode, fmt.Sprintf("client error: HTTP %d", statusCode))
	default:
		return &ClassifyError{
			Type:       ErrorTypeUnknown,
			Retryable:  false,
			StatusCode: statusCode,
			Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		}
	}
}

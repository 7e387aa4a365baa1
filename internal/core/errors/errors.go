// Package errors provides centralized error definitions for the application.
// Errors are organized by domain to avoid duplication and provide consistent naming.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Pipeline errors.
var (
	// ErrEmptyContext indicates a theme reached the composer with no supporting
	// posts. This is an upstream scorer bug and terminates the run.
	ErrEmptyContext = errors.New("theme has no supporting posts")

	// ErrAlreadyRunning indicates a pipeline run was requested while another
	// run was in flight. Expected control flow, not a failure.
	ErrAlreadyRunning = errors.New("pipeline run already in progress")
)

// Client and connection errors.
var (
	// ErrCircuitBreakerOpen indicates the circuit breaker has tripped and requests are blocked.
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

// Response and parsing errors.
var (
	// ErrEmptyResponse indicates an empty response was received.
	ErrEmptyResponse = errors.New("empty response")

	// ErrMalformedResponse indicates a response could not be parsed.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrUnexpectedStatus indicates an unexpected HTTP status was returned.
	ErrUnexpectedStatus = errors.New("unexpected status")
)

// Validation errors.
var (
	// ErrInvalidInput indicates invalid input was provided.
	ErrInvalidInput = errors.New("invalid input")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

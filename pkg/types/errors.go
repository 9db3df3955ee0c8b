package types

import (
	"errors"
	"fmt"
)

// ConfigError represents a client configuration problem, such as no active
// cluster being configured. It is surfaced before any I/O is attempted.
type ConfigError struct {
	Message string
}

// Error returns the error message.
func (e *ConfigError) Error() string {
	return e.Message
}

// NewConfigError creates a new ConfigError with the given message.
func NewConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{
		Message: fmt.Sprintf(format, args...),
	}
}

// IsConfigError checks if an error is a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// TransportError represents a network-level failure: connection refused,
// DNS failure, TLS handshake error, or an abruptly closed connection.
type TransportError struct {
	Err error
}

// Error returns the error message.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps an underlying network error.
func NewTransportError(err error) *TransportError {
	return &TransportError{Err: err}
}

// IsTransportError checks if an error is a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// StatusError represents a non-200 HTTP response from the cluster API.
// Status carries the decoded status object when the response body decoded
// cleanly; otherwise Body carries the raw response text.
type StatusError struct {
	// Code is the HTTP status code of the response.
	Code int

	// Status is the decoded status object, if the body decoded as one.
	Status *Status

	// Body is the raw response body, kept when decoding failed and as a
	// fallback for callers that want the original text.
	Body string
}

// Error returns the error message.
func (e *StatusError) Error() string {
	if e.Status != nil && e.Status.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Code, e.Status.Message)
	}
	if e.Body != "" {
		return fmt.Sprintf("server returned %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("server returned %d", e.Code)
}

// NewStatusError creates a StatusError carrying a decoded status object.
func NewStatusError(code int, status *Status, body string) *StatusError {
	return &StatusError{
		Code:   code,
		Status: status,
		Body:   body,
	}
}

// IsStatusError checks if an error is a StatusError.
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// StatusCode extracts the HTTP status code from a StatusError, or 0 when the
// error is of another kind.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Client-side error taxonomy. Callers branch on these with errors.Is / errors.As.

var (
	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates input rejected before it reaches the network
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransport indicates the request never produced an HTTP response
	ErrTransport = errors.New("transport failure")

	// ErrDecode indicates a response body could not be parsed
	ErrDecode = errors.New("malformed response")

	// ErrUnavailable indicates the API is being short-circuited
	ErrUnavailable = errors.New("service unavailable")
)

// APIError is returned for any non-2xx response.
type APIError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Operation, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Operation, e.StatusCode)
}

// IsClientError reports whether the server rejected the request itself (4xx)
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// InvalidInputError creates an invalid input error with context
func InvalidInputError(field, reason string) error {
	return fmt.Errorf("%s: %s: %w", field, reason, ErrInvalidInput)
}

// TransportError wraps a network-level failure
func TransportError(operation string, err error) error {
	return fmt.Errorf("%s: %w: %w", operation, ErrTransport, err)
}

// DecodeError wraps a response parsing failure
func DecodeError(operation string, err error) error {
	return fmt.Errorf("%s: %w: %w", operation, ErrDecode, err)
}

// Is checks if an error matches a target error (works with wrapped errors)
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}

package domain

import (
	"errors"
	"fmt"
)

// ErrTransport is returned when the decision API cannot be reached or answers with a non-2xx status.
var ErrTransport = errors.New("decision api transport failure")

// ErrMalformedResponse is returned when a 2xx payload is neither a menu nor an answer.
var ErrMalformedResponse = errors.New("malformed decision api response")

// ErrInvalidKey is returned when a navigation key is empty.
var ErrInvalidKey = errors.New("invalid navigation key")

// ErrPromptNotFound is returned when no navigation state is recorded for a prompt.
var ErrPromptNotFound = errors.New("prompt not found")

// TransportError describes a failed round trip to the decision API.
// StatusCode is zero when no response was received.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v", ErrTransport, e.Err)
	}
	return fmt.Sprintf("%v: unexpected status %d", ErrTransport, e.StatusCode)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// MalformedResponseError describes a payload that violates the menu/answer contract.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMalformedResponse, e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return ErrMalformedResponse
}

// Malformed is a shorthand for building a MalformedResponseError.
func Malformed(format string, args ...any) error {
	return &MalformedResponseError{Reason: fmt.Sprintf(format, args...)}
}

// ErrorKind classifies an error for logs and metrics.
// It returns "transport", "malformed", "invalid_key" or "internal".
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, ErrInvalidKey):
		return "invalid_key"
	default:
		return "internal"
	}
}

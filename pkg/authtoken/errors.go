// Package authtoken implements the authentication token container.
package authtoken

import (
	"errors"
	"fmt"
)

// Error represents a token error with a structured error code.
type Error struct {
	Code    string // Error code (e.g., "AK-TOKN-4040")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *Error) WithDetails(details string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// ErrorCode extracts the error code from an error if it is an Error.
func ErrorCode(err error) string {
	var te *Error
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

var (
	// ErrAttributeNotFound indicates the requested attribute key is absent.
	ErrAttributeNotFound = NewError("AK-TOKN-4040", "attribute not found")

	// ErrNoPrincipal indicates the token has no principal set.
	ErrNoPrincipal = NewError("AK-TOKN-4001", "no principal set")

	// ErrMalformedState indicates a token state snapshot cannot be restored.
	ErrMalformedState = NewError("AK-TOKN-4000", "malformed token state")
)

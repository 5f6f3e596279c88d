// Package authtoken implements the authentication token container.
package authtoken

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	err := NewError("AK-TEST-0001", "something failed")
	if got := err.Error(); got != "[AK-TEST-0001] something failed" {
		t.Errorf("Error() = %q", got)
	}

	withDetails := err.WithDetails("the key")
	if got := withDetails.Error(); !strings.Contains(got, "the key") {
		t.Errorf("Error() = %q, want details included", got)
	}
}

func TestError_Is(t *testing.T) {
	base := ErrAttributeNotFound
	detailed := ErrAttributeNotFound.WithDetails("some-key")

	if !errors.Is(detailed, base) {
		t.Error("errors.Is should match errors with the same code")
	}
	if errors.Is(detailed, ErrNoPrincipal) {
		t.Error("errors.Is should not match errors with different codes")
	}
}

func TestError_WithCauseUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := ErrMalformedState.WithCause(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
	if !errors.Is(err, ErrMalformedState) {
		t.Error("wrapping a cause must preserve the code identity")
	}

	// WithCause returns a copy; the sentinel stays clean.
	if ErrMalformedState.Cause != nil {
		t.Error("sentinel error was mutated")
	}
}

func TestErrorCode(t *testing.T) {
	if got := ErrorCode(ErrNoPrincipal); got != "AK-TOKN-4001" {
		t.Errorf("ErrorCode() = %q, want AK-TOKN-4001", got)
	}
	if got := ErrorCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("ErrorCode() = %q for a plain error, want empty", got)
	}
	wrapped := fmt.Errorf("outer: %w", ErrAttributeNotFound)
	if got := ErrorCode(wrapped); got != "AK-TOKN-4040" {
		t.Errorf("ErrorCode() = %q for a wrapped error, want AK-TOKN-4040", got)
	}
}

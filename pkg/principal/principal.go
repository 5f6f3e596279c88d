// Package principal defines the identity models carried by authentication tokens.
package principal

import "reflect"

// Principal is the subject an authentication token represents.
//
// Two forms are supported: Opaque (a bare identifier string) and
// structured principals such as *User. Custom implementations only
// need to expose an identifier.
type Principal interface {
	// Identifier returns the subject identifier (e.g. a username).
	Identifier() string
}

// CredentialEraser is implemented by principals that hold transient
// credentials which can be wiped after authentication.
type CredentialEraser interface {
	// EraseCredentials removes sensitive credential material.
	EraseCredentials()
}

// Opaque is a principal that is nothing but an identifier string.
//
// Opaque principals compare by value.
type Opaque string

// Identifier returns the identifier string itself.
func (o Opaque) Identifier() string {
	return string(o)
}

// Same reports whether two principals are the same subject.
//
// Equality rules:
//   - two Opaque principals are equal by value
//   - structured principals are equal only when they are the same
//     instance (reference identity); an equal-looking but distinct
//     instance is a different principal
//   - an Opaque principal is never the same as a structured one
//   - nil equals only nil
func Same(a, b Principal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ao, aOpaque := a.(Opaque)
	bo, bOpaque := b.(Opaque)
	if aOpaque && bOpaque {
		return ao == bo
	}
	if aOpaque != bOpaque {
		return false
	}

	// Structured principals compare by reference identity. Non-pointer
	// implementations are never the same instance.
	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)
	if ra.Kind() != reflect.Pointer || rb.Kind() != reflect.Pointer {
		return false
	}
	return ra.Type() == rb.Type() && ra.Pointer() == rb.Pointer()
}

// Package authtoken implements the authentication token container.
package authtoken

import (
	"github.com/yndnr/authkit-go/pkg/principal"
)

// Token binds a principal, its granted roles, an authenticated flag,
// and a free-form attribute bag.
//
// The role sequence is fixed at construction. Replacing the principal
// with a different subject forces the authenticated flag back to
// false; see SetPrincipal for the exact rule.
//
// A Token is not safe for concurrent mutation. Use one token per
// request or session, or guard it externally.
type Token struct {
	roles         []string
	principal     principal.Principal
	authenticated bool
	attributes    map[string]any
}

// New creates a Token with the given roles.
//
// The new token has no principal, is not authenticated, and carries an
// empty attribute bag.
func New(roles ...string) *Token {
	t := &Token{
		roles:      make([]string, len(roles)),
		attributes: make(map[string]any),
	}
	copy(t.roles, roles)
	return t
}

// SetPrincipal replaces the token's principal.
//
// If a principal was already set and the new one is not the same
// subject (per principal.Same), the authenticated flag is forced to
// false. Setting the same principal again leaves the flag unchanged.
func (t *Token) SetPrincipal(p principal.Principal) {
	if t.principal != nil && !principal.Same(t.principal, p) {
		t.authenticated = false
	}
	t.principal = p
}

// Principal returns the current principal, or nil if none is set.
func (t *Token) Principal() principal.Principal {
	return t.principal
}

// Identifier returns the principal's identifier.
//
// Fails with ErrNoPrincipal when no principal is set. An earlier
// design fell back to an empty string here; the explicit error keeps
// a missing identity observable instead of propagating "".
func (t *Token) Identifier() (string, error) {
	if t.principal == nil {
		return "", ErrNoPrincipal
	}
	return t.principal.Identifier(), nil
}

// SetAuthenticated overwrites the authenticated flag unconditionally.
func (t *Token) SetAuthenticated(authenticated bool) {
	t.authenticated = authenticated
}

// Authenticated returns the current authenticated flag.
func (t *Token) Authenticated() bool {
	return t.authenticated
}

// RoleNames returns a copy of the role sequence supplied at construction.
func (t *Token) RoleNames() []string {
	roles := make([]string, len(t.roles))
	copy(roles, t.roles)
	return roles
}

// SetAttribute stores a single attribute.
func (t *Token) SetAttribute(key string, value any) {
	if t.attributes == nil {
		t.attributes = make(map[string]any)
	}
	t.attributes[key] = value
}

// Attribute returns the attribute stored under key.
//
// Fails with ErrAttributeNotFound (naming the key) when the key is
// absent; an absent key is never silently defaulted.
func (t *Token) Attribute(key string) (any, error) {
	value, ok := t.attributes[key]
	if !ok {
		return nil, ErrAttributeNotFound.WithDetails(key)
	}
	return value, nil
}

// HasAttribute reports whether the attribute key is present.
func (t *Token) HasAttribute(key string) bool {
	_, ok := t.attributes[key]
	return ok
}

// SetAttributes replaces the entire attribute bag with a copy of attrs.
func (t *Token) SetAttributes(attrs map[string]any) {
	t.attributes = make(map[string]any, len(attrs))
	for k, v := range attrs {
		t.attributes[k] = v
	}
}

// Attributes returns a snapshot copy of the attribute bag.
// Mutating the returned map does not affect the token.
func (t *Token) Attributes() map[string]any {
	attrs := make(map[string]any, len(t.attributes))
	for k, v := range t.attributes {
		attrs[k] = v
	}
	return attrs
}

// EraseCredentials wipes credential material held by the principal,
// if the principal supports erasure. The token's own fields are not
// touched.
func (t *Token) EraseCredentials() {
	if eraser, ok := t.principal.(principal.CredentialEraser); ok {
		eraser.EraseCredentials()
	}
}

// Package authtoken implements the authentication token container.
package authtoken

import (
	"github.com/yndnr/authkit-go/pkg/principal"
)

// ImpersonationToken represents a subject acting as another: it binds
// the impersonated principal while preserving a snapshot of the
// impersonator's original token.
type ImpersonationToken struct {
	Token

	original State
}

// NewImpersonation creates an ImpersonationToken for the impersonated
// principal, capturing the original (impersonator's) token state.
func NewImpersonation(p principal.Principal, original *Token, roles ...string) *ImpersonationToken {
	t := &ImpersonationToken{
		Token:    *New(roles...),
		original: original.State(),
	}
	t.SetPrincipal(p)
	return t
}

// OriginalState returns the snapshot of the impersonator's token.
func (t *ImpersonationToken) OriginalState() State {
	return t.original
}

// ImpersonationState wraps the base token state together with the
// impersonator's original token state.
type ImpersonationState struct {
	Base     State `json:"base"`
	Original State `json:"original"`
}

// State captures a snapshot of the token, wrapping the base state.
func (t *ImpersonationToken) State() ImpersonationState {
	return ImpersonationState{
		Base:     t.Token.State(),
		Original: t.original,
	}
}

// Restore replaces the token's state with the snapshot, restoring the
// base state through the base token's own Restore.
func (t *ImpersonationToken) Restore(s ImpersonationState) error {
	if err := t.Token.Restore(s.Base); err != nil {
		return err
	}
	t.original = s.Original
	return nil
}

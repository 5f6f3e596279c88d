// Package authtoken implements the authentication token container.
package authtoken

import (
	"github.com/yndnr/authkit-go/pkg/principal"
)

// Principal kinds recorded in a state snapshot.
const (
	// KindNone marks a snapshot taken with no principal set.
	KindNone = ""

	// KindOpaque marks an opaque identifier principal.
	KindOpaque = "opaque"

	// KindUser marks a structured user principal.
	KindUser = "user"
)

// PrincipalState is the serialized form of a token's principal.
//
// Custom Principal implementations round-trip as opaque identifiers;
// richer serialization is the principal's own concern.
type PrincipalState struct {
	// Kind is the principal kind (KindNone, KindOpaque, KindUser).
	Kind string `json:"kind,omitempty"`

	// Opaque holds the identifier for opaque principals.
	Opaque string `json:"opaque,omitempty"`

	// User holds the structured principal, if any.
	User *principal.User `json:"user,omitempty"`
}

// State is a self-describing snapshot of a token: roles, principal,
// authenticated flag, and attribute bag.
//
// Restoring a state reproduces identical RoleNames and Attributes
// results. Derived token types wrap this base state inside their own
// (see CredentialsToken and ImpersonationToken).
type State struct {
	Roles         []string       `json:"roles"`
	Principal     PrincipalState `json:"principal"`
	Authenticated bool           `json:"authenticated"`
	Attributes    map[string]any `json:"attributes"`
}

// State captures a snapshot of the token.
func (t *Token) State() State {
	s := State{
		Roles:         t.RoleNames(),
		Authenticated: t.authenticated,
		Attributes:    t.Attributes(),
	}

	switch p := t.principal.(type) {
	case nil:
		s.Principal.Kind = KindNone
	case principal.Opaque:
		s.Principal.Kind = KindOpaque
		s.Principal.Opaque = string(p)
	case *principal.User:
		s.Principal.Kind = KindUser
		s.Principal.User = p
	default:
		s.Principal.Kind = KindOpaque
		s.Principal.Opaque = p.Identifier()
	}

	return s
}

// Restore replaces the token's state with the snapshot.
//
// A restored structured principal is a fresh instance; reference
// identity does not survive a round-trip. Fails with ErrMalformedState
// on an unknown principal kind or a kind without its payload.
func (t *Token) Restore(s State) error {
	p, err := restorePrincipal(s.Principal)
	if err != nil {
		return err
	}

	t.roles = make([]string, len(s.Roles))
	copy(t.roles, s.Roles)

	t.attributes = make(map[string]any, len(s.Attributes))
	for k, v := range s.Attributes {
		t.attributes[k] = v
	}

	t.principal = p
	t.authenticated = s.Authenticated
	return nil
}

func restorePrincipal(s PrincipalState) (principal.Principal, error) {
	switch s.Kind {
	case KindNone:
		return nil, nil
	case KindOpaque:
		return principal.Opaque(s.Opaque), nil
	case KindUser:
		if s.User == nil {
			return nil, ErrMalformedState.WithDetails("user principal without payload")
		}
		return s.User, nil
	default:
		return nil, ErrMalformedState.WithDetails("unknown principal kind: " + s.Kind)
	}
}

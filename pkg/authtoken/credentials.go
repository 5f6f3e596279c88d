// Package authtoken implements the authentication token container.
package authtoken

import (
	"github.com/yndnr/authkit-go/pkg/principal"
)

// CredentialsToken is a token carrying the transient credentials
// submitted during an authentication attempt, plus the key of the
// provider that accepted them.
//
// Credentials are deliberately excluded from state snapshots.
type CredentialsToken struct {
	Token

	providerKey string
	credentials string
}

// NewCredentials creates a CredentialsToken for the given principal.
func NewCredentials(p principal.Principal, credentials, providerKey string, roles ...string) *CredentialsToken {
	t := &CredentialsToken{
		Token:       *New(roles...),
		providerKey: providerKey,
		credentials: credentials,
	}
	t.SetPrincipal(p)
	return t
}

// ProviderKey returns the key of the provider that issued this token.
func (t *CredentialsToken) ProviderKey() string {
	return t.providerKey
}

// Credentials returns the submitted credentials, or "" after erasure.
func (t *CredentialsToken) Credentials() string {
	return t.credentials
}

// EraseCredentials wipes the token's own credentials, then defers to
// the base token so the principal's erasure hook still runs.
func (t *CredentialsToken) EraseCredentials() {
	t.credentials = ""
	t.Token.EraseCredentials()
}

// CredentialsState wraps the base token state with the fields added by
// CredentialsToken. Credentials themselves are never serialized.
type CredentialsState struct {
	Base        State  `json:"base"`
	ProviderKey string `json:"provider_key"`
}

// State captures a snapshot of the token, wrapping the base state.
func (t *CredentialsToken) State() CredentialsState {
	return CredentialsState{
		Base:        t.Token.State(),
		ProviderKey: t.providerKey,
	}
}

// Restore replaces the token's state with the snapshot, restoring the
// base state through the base token's own Restore.
func (t *CredentialsToken) Restore(s CredentialsState) error {
	if err := t.Token.Restore(s.Base); err != nil {
		return err
	}
	t.providerKey = s.ProviderKey
	t.credentials = ""
	return nil
}

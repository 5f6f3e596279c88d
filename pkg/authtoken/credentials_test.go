// Package authtoken implements the authentication token container.
package authtoken

import (
	"reflect"
	"testing"

	"github.com/yndnr/authkit-go/pkg/principal"
)

func TestNewCredentials(t *testing.T) {
	user := principal.NewUser("alice")
	tok := NewCredentials(user, "hunter2", "main", "admin")

	if tok.ProviderKey() != "main" {
		t.Errorf("ProviderKey() = %q, want %q", tok.ProviderKey(), "main")
	}
	if tok.Credentials() != "hunter2" {
		t.Errorf("Credentials() = %q, want %q", tok.Credentials(), "hunter2")
	}
	if !principal.Same(tok.Principal(), user) {
		t.Error("Principal() is not the constructed user")
	}
	if got := tok.RoleNames(); len(got) != 1 || got[0] != "admin" {
		t.Errorf("RoleNames() = %v, want [admin]", got)
	}
}

func TestCredentialsToken_EraseCredentials(t *testing.T) {
	user := principal.NewUser("alice")
	if err := user.SetPassword("hunter2"); err != nil {
		t.Fatalf("SetPassword() error = %v", err)
	}

	tok := NewCredentials(user, "hunter2", "main")
	tok.EraseCredentials()

	if tok.Credentials() != "" {
		t.Errorf("Credentials() = %q after erasure, want empty", tok.Credentials())
	}
	// The principal's own erasure hook ran too.
	if user.HasPassword() {
		t.Error("user still has a password after token erasure")
	}
}

func TestCredentialsToken_StateRoundTrip(t *testing.T) {
	tok := NewCredentials(principal.Opaque("alice"), "hunter2", "main", "admin")
	tok.SetAuthenticated(true)
	tok.SetAttribute("ip", "198.51.100.7")

	restored := &CredentialsToken{}
	if err := restored.Restore(tok.State()); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	if restored.ProviderKey() != "main" {
		t.Errorf("ProviderKey() = %q, want %q", restored.ProviderKey(), "main")
	}
	if !reflect.DeepEqual(restored.RoleNames(), tok.RoleNames()) {
		t.Errorf("RoleNames() = %v, want %v", restored.RoleNames(), tok.RoleNames())
	}
	if !reflect.DeepEqual(restored.Attributes(), tok.Attributes()) {
		t.Errorf("Attributes() = %v, want %v", restored.Attributes(), tok.Attributes())
	}
	if !restored.Authenticated() {
		t.Error("Authenticated() = false after round-trip, want true")
	}

	// Credentials are transient: they never survive serialization.
	if restored.Credentials() != "" {
		t.Errorf("Credentials() = %q after round-trip, want empty", restored.Credentials())
	}
}

func TestCredentialsToken_RestoreMalformedBase(t *testing.T) {
	restored := &CredentialsToken{}
	s := CredentialsState{
		Base:        State{Principal: PrincipalState{Kind: "wat"}},
		ProviderKey: "main",
	}
	if err := restored.Restore(s); err == nil {
		t.Error("Restore() error = nil for a malformed base state")
	}
}

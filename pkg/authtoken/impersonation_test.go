// Package authtoken implements the authentication token container.
package authtoken

import (
	"reflect"
	"testing"

	"github.com/yndnr/authkit-go/pkg/principal"
)

func TestNewImpersonation(t *testing.T) {
	original := New("admin")
	original.SetPrincipal(principal.Opaque("root"))
	original.SetAuthenticated(true)

	tok := NewImpersonation(principal.Opaque("alice"), original, "user")

	id, err := tok.Identifier()
	if err != nil {
		t.Fatalf("Identifier() error = %v", err)
	}
	if id != "alice" {
		t.Errorf("Identifier() = %q, want the impersonated subject %q", id, "alice")
	}

	orig := tok.OriginalState()
	if orig.Principal.Opaque != "root" {
		t.Errorf("original principal = %q, want %q", orig.Principal.Opaque, "root")
	}
	if !orig.Authenticated {
		t.Error("original state lost its authenticated flag")
	}
}

func TestImpersonationToken_StateRoundTrip(t *testing.T) {
	original := New("admin")
	original.SetPrincipal(principal.Opaque("root"))

	tok := NewImpersonation(principal.Opaque("alice"), original, "user")
	tok.SetAttribute("reason", "support ticket 123")

	restored := &ImpersonationToken{}
	if err := restored.Restore(tok.State()); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	if !reflect.DeepEqual(restored.RoleNames(), tok.RoleNames()) {
		t.Errorf("RoleNames() = %v, want %v", restored.RoleNames(), tok.RoleNames())
	}
	if !reflect.DeepEqual(restored.Attributes(), tok.Attributes()) {
		t.Errorf("Attributes() = %v, want %v", restored.Attributes(), tok.Attributes())
	}
	if !reflect.DeepEqual(restored.OriginalState(), tok.OriginalState()) {
		t.Error("original token state did not survive the round-trip")
	}
}

// Package snapshot encodes token state snapshots, plain or sealed.
package snapshot

import (
	"errors"
	"reflect"
	"testing"

	"github.com/yndnr/authkit-go/pkg/authtoken"
	"github.com/yndnr/authkit-go/pkg/crypto/adaptive"
	"github.com/yndnr/authkit-go/pkg/principal"
)

func sampleToken() *authtoken.Token {
	tok := authtoken.New("admin", "editor")
	tok.SetPrincipal(principal.Opaque("alice"))
	tok.SetAuthenticated(true)
	tok.SetAttributes(map[string]any{"ip": "198.51.100.7", "device": "laptop"})
	return tok
}

// assertRoundTrip restores a state into a fresh token and checks the
// round-trip contract: identical roles and attributes.
func assertRoundTrip(t *testing.T, original *authtoken.Token, restored authtoken.State) {
	t.Helper()

	tok := authtoken.New()
	if err := tok.Restore(restored); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	if !reflect.DeepEqual(tok.RoleNames(), original.RoleNames()) {
		t.Errorf("RoleNames() = %v, want %v", tok.RoleNames(), original.RoleNames())
	}
	if !reflect.DeepEqual(tok.Attributes(), original.Attributes()) {
		t.Errorf("Attributes() = %v, want %v", tok.Attributes(), original.Attributes())
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	tok := sampleToken()

	data, err := Marshal(tok.State())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	state, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	assertRoundTrip(t, tok, state)
}

func TestUnmarshal_Invalid(t *testing.T) {
	if _, err := Unmarshal([]byte("{not json")); err == nil {
		t.Error("Unmarshal() error = nil for invalid JSON")
	}
}

func TestNewCodec_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"no key material", Config{}, ErrNoKeyMaterial},
		{"key too short", Config{Key: []byte("short")}, ErrKeyTooShort},
		{"passphrase too weak", Config{Passphrase: []byte("weak")}, ErrPassphraseTooWeak},
		{"valid key", Config{Key: []byte("0123456789abcdef")}, nil},
		{"valid passphrase", Config{Passphrase: []byte("correct horse")}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCodec(tt.cfg)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("NewCodec() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewCodec() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCodec_SealOpenWithKey(t *testing.T) {
	codec, err := NewCodec(Config{Key: []byte("0123456789abcdef0123456789abcdef")})
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}

	tok := sampleToken()
	sealed, err := codec.Seal(tok.State())
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	state, err := codec.Open(sealed)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	assertRoundTrip(t, tok, state)
}

func TestCodec_SealOpenWithPassphrase(t *testing.T) {
	codec, err := NewCodec(Config{Passphrase: []byte("correct horse battery staple")})
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}

	tok := sampleToken()
	sealed, err := codec.Seal(tok.State())
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	// A second codec with the same passphrase opens the envelope: the
	// derivation salt travels inside it.
	reader, err := NewCodec(Config{Passphrase: []byte("correct horse battery staple")})
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}

	state, err := reader.Open(sealed)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	assertRoundTrip(t, tok, state)
}

func TestCodec_OpenWrongPassphrase(t *testing.T) {
	codec, err := NewCodec(Config{Passphrase: []byte("correct horse battery staple")})
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}

	sealed, err := codec.Seal(sampleToken().State())
	if err != nil {
		t.Fatalf("Seal() error = %v", err)
	}

	wrong, err := NewCodec(Config{Passphrase: []byte("incorrect horse")})
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}

	if _, err := wrong.Open(sealed); !errors.Is(err, ErrDecryptFailed) {
		t.Errorf("Open() error = %v, want ErrDecryptFailed", err)
	}
}

func TestCodec_ExplicitAlgorithm(t *testing.T) {
	for _, alg := range []adaptive.Algorithm{adaptive.AlgAESGCM, adaptive.AlgChaCha20} {
		t.Run(string(alg), func(t *testing.T) {
			codec, err := NewCodec(Config{
				Key:       []byte("0123456789abcdef0123456789abcdef"),
				Algorithm: alg,
			})
			if err != nil {
				t.Fatalf("NewCodec() error = %v", err)
			}

			tok := sampleToken()
			sealed, err := codec.Seal(tok.State())
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}

			state, err := codec.Open(sealed)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			assertRoundTrip(t, tok, state)
		})
	}
}

func TestCodec_OpenMalformed(t *testing.T) {
	codec, err := NewCodec(Config{Key: []byte("0123456789abcdef0123456789abcdef")})
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"not json", []byte("garbage")},
		{"empty object", []byte("{}")},
		{"wrong version", []byte(`{"v":99,"alg":"aes-gcm","data":"AAAA"}`)},
		{"unknown algorithm", []byte(`{"v":1,"alg":"rot13","data":"AAAA"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := codec.Open(tt.data); !errors.Is(err, ErrMalformedEnvelope) {
				t.Errorf("Open() error = %v, want ErrMalformedEnvelope", err)
			}
		})
	}
}

func TestCodec_PassphraseEnvelopeWithoutSalt(t *testing.T) {
	codec, err := NewCodec(Config{Passphrase: []byte("correct horse battery staple")})
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}

	if _, err := codec.Open([]byte(`{"v":1,"alg":"aes-gcm","data":"AAAA"}`)); !errors.Is(err, ErrMalformedEnvelope) {
		t.Errorf("Open() error = %v, want ErrMalformedEnvelope", err)
	}
}

// Package snapshot encodes token state snapshots, plain or sealed.
package snapshot

import (
	"encoding/json"
	"errors"

	"github.com/yndnr/authkit-go/pkg/authtoken"
	"github.com/yndnr/authkit-go/pkg/crypto/adaptive"
)

// envelopeVersion is the current sealed envelope version.
const envelopeVersion = 1

// additionalData binds ciphertexts to this envelope format.
var additionalData = []byte("authkit.snapshot.v1")

// Codec errors.
var (
	ErrKeyTooShort       = errors.New("snapshot: encryption key too short (minimum 16 bytes)")
	ErrPassphraseTooWeak = errors.New("snapshot: passphrase too weak (minimum 8 characters)")
	ErrNoKeyMaterial     = errors.New("snapshot: either Key or Passphrase must be provided")
	ErrMalformedEnvelope = errors.New("snapshot: malformed envelope")
	ErrDecryptFailed     = errors.New("snapshot: decryption failed - wrong key or corrupted data")
)

// Marshal encodes a token state as plain JSON.
func Marshal(s authtoken.State) ([]byte, error) {
	return json.Marshal(s)
}

// Unmarshal decodes a plain JSON token state.
func Unmarshal(data []byte) (authtoken.State, error) {
	var s authtoken.State
	if err := json.Unmarshal(data, &s); err != nil {
		return authtoken.State{}, err
	}
	return s, nil
}

// Config configures a sealing Codec.
type Config struct {
	// Key is the raw encryption key (expanded to 32 bytes via HKDF).
	// Ignored when Passphrase is set.
	Key []byte

	// Passphrase derives the encryption key via Argon2id. The salt is
	// generated per envelope and persisted inside it.
	Passphrase []byte

	// Algorithm selects the AEAD; empty means hardware-adaptive.
	Algorithm adaptive.Algorithm
}

// Codec seals token states into self-describing encrypted envelopes.
type Codec struct {
	key        []byte
	passphrase []byte
	alg        adaptive.Algorithm
}

// NewCodec creates a Codec from the configuration.
func NewCodec(cfg Config) (*Codec, error) {
	c := &Codec{alg: cfg.Algorithm}

	switch {
	case len(cfg.Passphrase) > 0:
		if len(cfg.Passphrase) < MinPassphraseLength {
			return nil, ErrPassphraseTooWeak
		}
		c.passphrase = cfg.Passphrase
	case len(cfg.Key) > 0:
		if len(cfg.Key) < MinKeyLength {
			return nil, ErrKeyTooShort
		}
		c.key = expandKey(cfg.Key)
	default:
		return nil, ErrNoKeyMaterial
	}

	return c, nil
}

// envelope is the sealed snapshot wire form. The salt field is only
// present for passphrase-derived keys.
type envelope struct {
	Version   int    `json:"v"`
	Algorithm string `json:"alg"`
	Salt      []byte `json:"salt,omitempty"`
	Data      []byte `json:"data"`
}

// Seal encrypts a token state into an envelope.
func (c *Codec) Seal(s authtoken.State) ([]byte, error) {
	plaintext, err := Marshal(s)
	if err != nil {
		return nil, err
	}

	key := c.key
	var salt []byte
	if c.passphrase != nil {
		salt, err = newSalt()
		if err != nil {
			return nil, err
		}
		key = deriveKey(c.passphrase, salt)
	}

	cipher, err := c.newCipher(key)
	if err != nil {
		return nil, err
	}

	data, err := cipher.Seal(plaintext, additionalData)
	if err != nil {
		return nil, err
	}

	return json.Marshal(envelope{
		Version:   envelopeVersion,
		Algorithm: string(cipher.Algorithm()),
		Salt:      salt,
		Data:      data,
	})
}

// Open decrypts an envelope back into a token state.
func (c *Codec) Open(data []byte) (authtoken.State, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return authtoken.State{}, ErrMalformedEnvelope
	}
	if env.Version != envelopeVersion || len(env.Data) == 0 {
		return authtoken.State{}, ErrMalformedEnvelope
	}

	key := c.key
	if c.passphrase != nil {
		if len(env.Salt) == 0 {
			return authtoken.State{}, ErrMalformedEnvelope
		}
		key = deriveKey(c.passphrase, env.Salt)
	}

	cipher, err := adaptive.NewWithAlgorithm(key, adaptive.Algorithm(env.Algorithm))
	if err != nil {
		return authtoken.State{}, ErrMalformedEnvelope
	}

	plaintext, err := cipher.Open(env.Data, additionalData)
	if err != nil {
		return authtoken.State{}, ErrDecryptFailed
	}

	return Unmarshal(plaintext)
}

func (c *Codec) newCipher(key []byte) (*adaptive.Cipher, error) {
	if c.alg == "" {
		return adaptive.New(key)
	}
	return adaptive.NewWithAlgorithm(key, c.alg)
}

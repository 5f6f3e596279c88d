// Package adaptive provides authenticated encryption with automatic
// algorithm selection.
//
// It selects the optimal AEAD based on hardware capabilities:
// AES-GCM when hardware AES is available, ChaCha20-Poly1305 otherwise.
package adaptive

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"io"
	"runtime"

	"golang.org/x/crypto/chacha20poly1305"
)

// Algorithm identifies the AEAD algorithm.
type Algorithm string

const (
	AlgAESGCM   Algorithm = "aes-gcm"
	AlgChaCha20 Algorithm = "chacha20-poly1305"
)

// KeySize is the required key length in bytes for both algorithms.
const KeySize = 32

var (
	// ErrInvalidKeySize indicates the key is not KeySize bytes.
	ErrInvalidKeySize = errors.New("adaptive: key must be 32 bytes")

	// ErrCiphertextTooShort indicates the ciphertext cannot carry a nonce.
	ErrCiphertextTooShort = errors.New("adaptive: ciphertext too short")
)

// Cipher provides authenticated encryption with a random nonce
// prepended to every ciphertext.
type Cipher struct {
	alg  Algorithm
	aead cipher.AEAD
}

// New creates a cipher, selecting the algorithm for this hardware.
func New(key []byte) (*Cipher, error) {
	if hasHardwareAES() {
		return NewWithAlgorithm(key, AlgAESGCM)
	}
	return NewWithAlgorithm(key, AlgChaCha20)
}

// NewWithAlgorithm creates a cipher of the specified algorithm.
func NewWithAlgorithm(key []byte, alg Algorithm) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}

	var (
		aead cipher.AEAD
		err  error
	)
	switch alg {
	case AlgAESGCM:
		var block cipher.Block
		block, err = aes.NewCipher(key)
		if err == nil {
			aead, err = cipher.NewGCM(block)
		}
	case AlgChaCha20:
		aead, err = chacha20poly1305.New(key)
	default:
		return nil, errors.New("adaptive: unknown algorithm: " + string(alg))
	}
	if err != nil {
		return nil, err
	}

	return &Cipher{alg: alg, aead: aead}, nil
}

// Algorithm returns the selected algorithm.
func (c *Cipher) Algorithm() Algorithm {
	return c.alg
}

// Seal encrypts plaintext, binding additionalData into the
// authentication tag. The nonce is prepended to the result.
func (c *Cipher) Seal(plaintext, additionalData []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return c.aead.Seal(nonce, nonce, plaintext, additionalData), nil
}

// Open decrypts a ciphertext produced by Seal.
func (c *Cipher) Open(ciphertext, additionalData []byte) ([]byte, error) {
	if len(ciphertext) < c.aead.NonceSize() {
		return nil, ErrCiphertextTooShort
	}

	nonce := ciphertext[:c.aead.NonceSize()]
	return c.aead.Open(nil, nonce, ciphertext[c.aead.NonceSize():], additionalData)
}

// Overhead returns the per-message size overhead (nonce + tag).
func (c *Cipher) Overhead() int {
	return c.aead.NonceSize() + c.aead.Overhead()
}

// hasHardwareAES reports whether hardware AES acceleration is expected.
// Go's crypto/aes uses AES-NI on amd64 and the ARM crypto extensions
// on arm64; other architectures prefer ChaCha20.
func hasHardwareAES() bool {
	switch runtime.GOARCH {
	case "amd64", "arm64":
		return true
	default:
		return false
	}
}

// Package snapshot encodes token state snapshots, plain or sealed.
package snapshot

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

// Key material constraints.
const (
	// MinKeyLength is the minimum raw key length.
	MinKeyLength = 16

	// MinPassphraseLength is the minimum passphrase length.
	MinPassphraseLength = 8

	// SaltLength is the per-envelope salt length for key derivation.
	SaltLength = 16
)

// Argon2id parameters for passphrase key derivation.
const (
	argon2Time    = 3
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
)

// hkdfInfo domain-separates keys expanded for snapshot sealing.
var hkdfInfo = []byte("authkit snapshot key")

// deriveKey derives a 32-byte key from a passphrase and salt.
func deriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
}

// expandKey stretches a raw key to exactly 32 bytes via HKDF-SHA256.
func expandKey(key []byte) []byte {
	out := make([]byte, argon2KeyLen)
	r := hkdf.New(sha256.New, key, nil, hkdfInfo)
	if _, err := io.ReadFull(r, out); err != nil {
		// HKDF-SHA256 can produce far more than 32 bytes; a short read
		// here is unreachable.
		panic(err)
	}
	return out
}

// newSalt generates a random per-envelope salt.
func newSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// Package secret provides secret generation and hashing utilities.
package secret

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Hash computes the SHA-256 hash of a secret.
//
// The returned hash carries the aksh_ prefix and a hex body.
func Hash(plaintext string) string {
	h := sha256.Sum256([]byte(plaintext))
	return HashPrefix + hex.EncodeToString(h[:])
}

// Verify verifies a secret against an expected hash.
//
// Uses constant-time comparison to prevent timing attacks.
func Verify(plaintext, expectedHash string) bool {
	actual := Hash(plaintext)
	return subtle.ConstantTimeCompare([]byte(actual), []byte(expectedHash)) == 1
}

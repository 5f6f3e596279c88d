// Package secret provides secret generation and hashing utilities.
package secret

import (
	"crypto/rand"
	"encoding/base64"
)

// DefaultLength is the default secret length in bytes.
const DefaultLength = 32

// New generates a prefixed secret and its hash.
//
// The plaintext secret (akst_...) should only be handed to the client
// once; store and look up the hash (aksh_...) instead.
func New() (plaintext string, hash string, err error) {
	body, err := Generate()
	if err != nil {
		return "", "", err
	}

	plaintext = Prefix + body
	hash = Hash(plaintext)
	return plaintext, hash, nil
}

// Generate generates a cryptographically secure random secret body.
//
// The returned value is Base64 RawURL encoded for safe URL transmission.
func Generate() (string, error) {
	return GenerateWithLength(DefaultLength)
}

// GenerateWithLength generates a secret body with the specified byte length.
func GenerateWithLength(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

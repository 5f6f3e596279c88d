// Package secret provides secret generation and hashing utilities.
package secret

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// Secret format constants.
const (
	// Prefix is the prefix for plaintext secrets (sensitive, uses underscore).
	Prefix = "akst_"

	// HashPrefix is the prefix for secret hashes.
	HashPrefix = "aksh_"

	// BodyLength is the Base64 RawURL encoded length (32 bytes -> 43 chars).
	BodyLength = 43

	// SecretLength is the total secret length (prefix + body).
	SecretLength = 5 + BodyLength

	// HashLength is the total hash length (prefix + hex SHA-256).
	HashLength = 5 + 64
)

// ValidFormat checks if a string has valid prefixed secret format.
func ValidFormat(s string) bool {
	if len(s) != SecretLength {
		return false
	}
	if !strings.HasPrefix(s, Prefix) {
		return false
	}

	_, err := base64.RawURLEncoding.DecodeString(s[len(Prefix):])
	return err == nil
}

// ValidHashFormat checks if a string has valid secret hash format.
func ValidHashFormat(h string) bool {
	if len(h) != HashLength {
		return false
	}
	if !strings.HasPrefix(strings.ToLower(h), HashPrefix) {
		return false
	}

	_, err := hex.DecodeString(h[len(HashPrefix):])
	return err == nil
}

// NormalizeHash normalizes a secret hash to lowercase.
// Returns empty string if the hash is invalid.
func NormalizeHash(h string) string {
	normalized := strings.ToLower(h)
	if !ValidHashFormat(normalized) {
		return ""
	}
	return normalized
}

// Mask masks a secret for safe logging.
// Example: akst_ABC...xyz
func Mask(s string) string {
	if len(s) < 10 || !strings.HasPrefix(s, Prefix) {
		return "***REDACTED***"
	}

	body := s[len(Prefix):]
	if len(body) > 6 {
		return Prefix + body[:3] + "..." + body[len(body)-3:]
	}
	return Prefix + "***"
}

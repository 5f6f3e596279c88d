// Package secret provides secret generation and hashing utilities.
//
// Secret Format:
//
//   - Prefix: akst_ (5 characters)
//   - Body: 43 characters of Base64 RawURL encoded random bytes
//   - Total: 48 characters
//
// Hash Format:
//
//   - Prefix: aksh_ (5 characters)
//   - Body: 64 characters of hex-encoded SHA-256 hash
//   - Total: 69 characters
//
// Security:
//
//   - Uses crypto/rand for CSPRNG
//   - SHA-256 hashing with constant-time comparison
//   - Plaintext secrets are never stored, only hashes
package secret

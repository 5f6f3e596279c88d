// Package principal defines the identity models carried by authentication tokens.
package principal

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for password hashing.
const (
	// Argon2Memory is the memory parameter in KB (16 MB).
	Argon2Memory uint32 = 16384

	// Argon2Time is the iteration count.
	Argon2Time uint32 = 2

	// Argon2Parallelism is the parallelism factor.
	Argon2Parallelism uint8 = 2

	// Argon2KeyLen is the output hash length in bytes.
	Argon2KeyLen uint32 = 32

	// Argon2SaltLen is the salt length in bytes.
	Argon2SaltLen = 16
)

// User is a structured principal: an identifier plus an ordered role list.
//
// The password hash is transient authentication material; it is never
// serialized and is wiped by EraseCredentials.
type User struct {
	// ID is the unique user identifier.
	ID string `json:"id"`

	// Roles is the ordered list of role names granted to the user.
	Roles []string `json:"roles"`

	passwordHash []byte
	passwordSalt []byte
}

// NewUser creates a User with the given identifier and roles.
func NewUser(id string, roles ...string) *User {
	u := &User{
		ID:    id,
		Roles: make([]string, len(roles)),
	}
	copy(u.Roles, roles)
	return u
}

// Identifier returns the user identifier.
func (u *User) Identifier() string {
	return u.ID
}

// RoleNames returns a copy of the user's role list.
func (u *User) RoleNames() []string {
	roles := make([]string, len(u.Roles))
	copy(roles, u.Roles)
	return roles
}

// SetPassword hashes the password with Argon2id and a random salt.
func (u *User) SetPassword(password string) error {
	salt := make([]byte, Argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return err
	}

	u.passwordSalt = salt
	u.passwordHash = argon2.IDKey([]byte(password), salt,
		Argon2Time, Argon2Memory, Argon2Parallelism, Argon2KeyLen)
	return nil
}

// VerifyPassword verifies a password against the stored hash.
//
// Uses constant-time comparison. Returns false when no password is set.
func (u *User) VerifyPassword(password string) bool {
	if len(u.passwordHash) == 0 {
		return false
	}

	candidate := argon2.IDKey([]byte(password), u.passwordSalt,
		Argon2Time, Argon2Memory, Argon2Parallelism, Argon2KeyLen)
	return subtle.ConstantTimeCompare(candidate, u.passwordHash) == 1
}

// HasPassword reports whether the user has a password hash set.
func (u *User) HasPassword() bool {
	return len(u.passwordHash) > 0
}

// EraseCredentials wipes the password hash and salt.
// Implements CredentialEraser.
func (u *User) EraseCredentials() {
	for i := range u.passwordHash {
		u.passwordHash[i] = 0
	}
	for i := range u.passwordSalt {
		u.passwordSalt[i] = 0
	}
	u.passwordHash = nil
	u.passwordSalt = nil
}

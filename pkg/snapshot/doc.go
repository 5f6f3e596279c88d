// Package snapshot encodes token state snapshots, plain or sealed.
//
// Marshal/Unmarshal give the plain JSON round-trip: restoring a
// marshaled state reproduces the token's roles and attributes exactly.
// The format is self-describing; no cross-implementation wire
// compatibility is promised.
//
// Codec adds authenticated encryption for snapshots that leave the
// process (cookies, session stores). The sealed envelope records the
// envelope version, the AEAD algorithm, and - for passphrase-derived
// keys - the Argon2id salt, so an envelope is sufficient on its own
// to reverse, given the key material.
//
// Raw keys are expanded to 32 bytes with HKDF-SHA256; passphrases are
// stretched with Argon2id using a fresh salt per envelope.
package snapshot

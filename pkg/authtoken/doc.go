// Package authtoken implements the authentication token container.
//
// A Token binds four things: a principal (who), an ordered role list
// granted at construction, an authenticated flag, and a free-form
// string-keyed attribute bag.
//
// Identity invariant:
//
// Replacing the principal with a different subject forces the
// authenticated flag back to false. "Different" follows the rules in
// package principal: opaque identifiers compare by value, structured
// principals by reference identity. Setting the same subject again
// leaves the flag alone.
//
// Snapshots:
//
// State/Restore form the serialization pair. A snapshot is a plain
// data value; encoding it (and optionally sealing it) is the job of
// package snapshot. Derived token types layer their extra fields
// around the base State rather than relying on field visibility:
// CredentialsToken adds a provider key (credentials are transient and
// never serialized), ImpersonationToken carries the impersonator's
// original token state.
//
// Tokens are single-goroutine value objects; concurrent mutation
// requires external synchronization.
package authtoken

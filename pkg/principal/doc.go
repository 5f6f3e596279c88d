// Package principal defines the identity models carried by authentication tokens.
//
// A Principal is the subject a token represents. Two forms exist:
//
//   - Opaque: a bare identifier string, compared by value
//   - User: a structured principal with an identifier, an ordered role
//     list, and optional transient password material, compared by
//     reference identity
//
// The Same function implements the equality rule used by the token
// layer to decide whether a principal replacement is an identity
// change: opaque principals are value-equal, structured principals are
// equal only when they are literally the same instance.
//
// Password hashing uses Argon2id with a per-user random salt. Hashes
// are transient: they are never serialized with the user and are wiped
// by EraseCredentials.
package principal

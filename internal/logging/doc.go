// Package logging provides structured logging with secret redaction.
//
// It wraps log/slog with a ReplaceAttr hook that masks akst_-prefixed
// secret values (prefix plus first/last three characters survive as a
// correlation hint) and fully redacts values under keys that look
// sensitive (password, secret, credential, ...).
package logging

// Package config defines the security configuration structure.
package config

import "time"

// Spec is the root configuration for authkit components.
type Spec struct {
	Token    TokenSection    `koanf:"token"`
	Snapshot SnapshotSection `koanf:"snapshot"`
	Throttle ThrottleSection `koanf:"throttle"`
	Log      LogSection      `koanf:"log"`
}

// TokenSection configures token issuance and storage.
type TokenSection struct {
	// TTL is the lifetime applied to stored tokens. Zero disables expiry.
	TTL time.Duration `koanf:"ttl"`

	// QuotaPerSubject is the maximum live tokens per subject.
	QuotaPerSubject int `koanf:"quota_per_subject"`
}

// SnapshotSection configures sealed snapshot encryption.
type SnapshotSection struct {
	// Algorithm selects the AEAD ("aes-gcm", "chacha20-poly1305").
	// Empty selects by hardware.
	Algorithm string `koanf:"algorithm"`

	// PassphraseEnv names the environment variable holding the sealing
	// passphrase. Indirection keeps the passphrase itself out of config
	// files.
	PassphraseEnv string `koanf:"passphrase_env"`
}

// ThrottleSection configures login attempt limiting.
type ThrottleSection struct {
	// Rate is the sustained attempts-per-second allowance per key.
	Rate float64 `koanf:"rate"`

	// Burst is the burst allowance per key.
	Burst int `koanf:"burst"`

	// IdleAfter is how long an unused key is tracked before eviction.
	IdleAfter time.Duration `koanf:"idle_after"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default configuration values.
const (
	DefaultTokenTTL        = 24 * time.Hour
	DefaultQuotaPerSubject = 50

	DefaultThrottleRate  = 1.0
	DefaultThrottleBurst = 5
	DefaultIdleAfter     = 15 * time.Minute

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default configuration.
func Default() *Spec {
	return &Spec{
		Token: TokenSection{
			TTL:             DefaultTokenTTL,
			QuotaPerSubject: DefaultQuotaPerSubject,
		},
		Throttle: ThrottleSection{
			Rate:      DefaultThrottleRate,
			Burst:     DefaultThrottleBurst,
			IdleAfter: DefaultIdleAfter,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

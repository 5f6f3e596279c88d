// Package config defines the security configuration structure.
package config

import (
	"errors"
	"strings"
)

// Verify validates the configuration.
func Verify(spec *Spec) error {
	var violations []string

	if spec.Token.TTL < 0 {
		violations = append(violations, "token.ttl must not be negative")
	}
	if spec.Token.QuotaPerSubject < 0 {
		violations = append(violations, "token.quota_per_subject must not be negative")
	}

	switch spec.Snapshot.Algorithm {
	case "", "aes-gcm", "chacha20-poly1305":
	default:
		violations = append(violations, "snapshot.algorithm must be aes-gcm or chacha20-poly1305")
	}

	if spec.Throttle.Rate < 0 {
		violations = append(violations, "throttle.rate must not be negative")
	}
	if spec.Throttle.Burst < 1 {
		violations = append(violations, "throttle.burst must be at least 1")
	}

	switch strings.ToLower(spec.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		violations = append(violations, "log.level must be one of debug, info, warn, error")
	}

	if len(violations) > 0 {
		return errors.New("invalid configuration: " + strings.Join(violations, "; "))
	}
	return nil
}

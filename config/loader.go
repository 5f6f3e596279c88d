// Package config defines the security configuration structure.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "AUTHKIT_"

// Loader loads configuration from multiple sources.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigFile sets the configuration file path.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load loads configuration into target.
// Loading order (later sources override earlier):
//  1. YAML configuration file (if set)
//  2. Environment variables
func (l *Loader) Load(target *Spec) error {
	if l.filePath != "" {
		if err := l.k.Load(file.Provider(l.filePath), yaml.Parser()); err != nil {
			return fmt.Errorf("load config file %s: %w", l.filePath, err)
		}
	}

	if err := l.loadEnv(); err != nil {
		return err
	}

	if err := l.k.Unmarshal("", target); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	return nil
}

// loadEnv loads configuration from environment variables.
// Format: AUTHKIT_SECTION_KEY (uppercase, underscores).
// Example: AUTHKIT_TOKEN_TTL=30m -> token.ttl
func (l *Loader) loadEnv() error {
	transform := func(s string) string {
		s = strings.TrimPrefix(s, l.envPrefix)
		s = strings.ToLower(s)

		// Section and key are separated by the first underscore; keys
		// themselves keep their underscores (quota_per_subject).
		if i := strings.Index(s, "_"); i > 0 {
			return s[:i] + "." + s[i+1:]
		}
		return s
	}

	if err := l.k.Load(env.Provider(l.envPrefix, ".", transform), nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// Get returns a raw value from the loaded configuration by key.
func (l *Loader) Get(key string) any {
	return l.k.Get(key)
}

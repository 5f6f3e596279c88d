// Package config defines the security configuration structure.
//
// Configuration is loaded with Koanf from YAML files and environment
// variables (AUTHKIT_ prefix), later sources overriding earlier ones,
// then validated with Verify. A fsnotify-based Watcher supports
// reloading on file changes.
//
// Sensitive material never lives in the config file itself: the
// snapshot section names an environment variable holding the sealing
// passphrase rather than the passphrase.
package config

// Package config loads, normalizes, and validates posterforge configuration.
//
// Configuration lives in a single TOML file (default
// ~/.config/posterforge/config.toml, with a posterforge.toml in the working
// directory as a project-local fallback). Load always starts from Default()
// so a missing file yields a fully usable configuration. Path fields are
// tilde-expanded and made absolute before use; the core pipeline never reads
// environment variables.
package config

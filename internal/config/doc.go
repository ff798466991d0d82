// Package config loads, normalizes, and validates subalch configuration.
//
// It supplies repository defaults, reads TOML files, expands user paths
// (including tilde shortcuts) and honours environment fallbacks such as
// SUBALCH_STT_COMMAND. Always obtain settings through this package so
// downstream code receives sanitized paths and clear validation errors.
package config

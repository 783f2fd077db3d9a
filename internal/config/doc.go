// Package config loads, normalizes, and validates matclean configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// MATCLEAN_NTFY_TOPIC. The Config type centralizes every knob the CLI needs,
// from the external tool binary and per-file timeout to the extension
// allow-list and protected path prefixes.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config

// Package config loads, normalizes, and validates docreorg configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// DOCREORG_SOURCE_DIR. The Config type centralizes the source and destination
// roots, the mapping selection, and logging knobs so the CLI resolves them in
// one pass.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config

// Package config loads, normalizes, and validates popon configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks. The
// Config type centralizes every knob the CLI needs: decode frame rate and
// parity checking, output format, catalog location, and log routing.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical formats, and clear validation errors.
package config

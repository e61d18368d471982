// Package config loads, normalizes, and validates reelscore configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// REELSCORE_DATA_FILE. The Config type centralizes every knob the CLI and the
// pipeline stages need: dataset location, cleaning thresholds, feature
// encoding, model hyperparameters, tuning grids, and report outputs.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical encoding names, and clear validation errors.
package config

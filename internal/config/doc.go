// Package config loads, normalizes, and validates submatch configuration data.
//
// Configuration lives next to the media it describes: each working directory
// carries its own submatch.toml with the globs, episode patterns, and track
// tag mappings for that series. Missing optional fields fall back to
// repository defaults (two-digit whitespace-delimited episode pattern, *.mkv
// video glob). When no file exists, CreateSample writes an annotated template
// for the user to edit.
//
// Always obtain settings through Load so downstream code receives compiled
// episode patterns, parsed track tag maps, and clear validation errors.
package config

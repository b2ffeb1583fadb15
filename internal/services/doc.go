// Package services defines shared utilities consumed by the planners and
// external tool integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run correlation identifiers for logging.
//   - Structured error markers plus the Wrap helper that keep failure
//     messages consistent across probe, extraction, and rename paths.
package services

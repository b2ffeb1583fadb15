// Package logging constructs the slog loggers used across submatch.
//
// It offers a console handler for interactive runs, a JSON handler for
// machine consumption, attr helpers mirroring the slog constructors, and
// context plumbing that stamps the per-invocation correlation identifier on
// every record.
package logging

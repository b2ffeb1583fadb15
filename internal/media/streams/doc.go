// Package streams derives naming information from probed subtitle streams.
//
// A video's track-to-tag mapping is either fully explicit (user config,
// validated against the probed stream count) or fully derived from stream
// metadata as "{language}-{title}"; the two sources never mix. Output file
// suffixes come from a fixed codec table, and any codec outside it fails the
// video before an operation is planned.
package streams

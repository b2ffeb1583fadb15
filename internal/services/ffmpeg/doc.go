// Package ffmpeg builds and runs the ffmpeg invocations that copy subtitle
// streams and dump font attachments.
//
// Argument construction is separated from execution so planners can emit
// complete commands for preview, and tests can assert on them, without
// touching the binary. Prefer this package over ad-hoc exec.Command usage
// when interacting with ffmpeg.
package ffmpeg

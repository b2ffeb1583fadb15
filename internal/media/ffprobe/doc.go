// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// Key types:
//   - Result: parsed ffprobe output containing the selected streams
//   - Stream: individual stream properties including codec and tag metadata
//
// Primary entry point:
//   - InspectSubtitles: executes ffprobe against a video, selecting only
//     subtitle streams so stream order matches ffmpeg's 0:s:<n> mapping
//
// Parse is exposed separately so planners can be tested against canned
// ffprobe payloads without the binary present.
package ffprobe

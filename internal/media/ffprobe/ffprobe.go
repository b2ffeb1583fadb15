package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
}

// Stream describes a single stream in the media container. When the probe
// selects subtitle streams only, the slice position is the subtitle-relative
// track index ffmpeg uses for 0:s:<n> mapping; Index remains the absolute
// stream index within the container.
type Stream struct {
	Index     int        `json:"index"`
	CodecName string     `json:"codec_name"`
	CodecType string     `json:"codec_type"`
	Tags      StreamTags `json:"tags"`
}

// StreamTags captures the container metadata attached to a stream.
type StreamTags struct {
	Language string `json:"language"`
	Title    string `json:"title"`
}

// InspectSubtitles executes ffprobe against the provided path, selecting
// subtitle streams only, and decodes the JSON response.
func InspectSubtitles(ctx context.Context, binary string, path string) (Result, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{}, errors.New("ffprobe inspect: empty path")
	}

	cmd := exec.CommandContext(ctx, binary, "-v", "error", "-hide_banner", "-print_format", "json", "-show_streams", "-select_streams", "s", "--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Result{}, fmt.Errorf("ffprobe inspect: %w: %s", err, strings.TrimSpace(string(output)))
	}

	return Parse(output)
}

// Parse decodes a raw ffprobe JSON payload.
func Parse(payload []byte) (Result, error) {
	var result Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return Result{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	return result, nil
}

// SubtitleCount returns the number of subtitle streams in the result.
func (r Result) SubtitleCount() int {
	count := 0
	for _, stream := range r.Streams {
		if stream.CodecType == "" || strings.EqualFold(stream.CodecType, "subtitle") {
			count++
		}
	}
	return count
}

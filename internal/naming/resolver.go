package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Stem returns the file name without its last extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CompoundSuffix returns every trailing dotted suffix of the file name, e.g.
// ".en.srt" for "Show 05.en.srt". Leading dots do not count as separators.
func CompoundSuffix(path string) string {
	name := strings.TrimLeft(filepath.Base(path), ".")
	idx := strings.Index(name, ".")
	if idx < 0 {
		return ""
	}
	return name[idx:]
}

// EpisodeID extracts the episode identifier from a file stem using the
// pattern's first capture group. The identifier is the verbatim captured
// text, so leading zeros are preserved.
func EpisodeID(path string, pattern *regexp.Regexp) (string, bool) {
	match := pattern.FindStringSubmatch(Stem(path))
	if len(match) < 2 || match[1] == "" {
		return "", false
	}
	return match[1], true
}

// ResolveExtractionBase returns the video whose name seeds extracted
// subtitle files. Without a target index the origin names its own subtitles.
// With one, the origin's episode identifier selects the target video, and
// any miss falls back to the origin.
func ResolveExtractionBase(origin string, pattern *regexp.Regexp, target map[string]string) string {
	if len(target) == 0 {
		return origin
	}
	id, ok := EpisodeID(origin, pattern)
	if !ok {
		return origin
	}
	if video, ok := target[id]; ok {
		return video
	}
	return origin
}

// ResolveRenameVideo returns the video matching the subtitle's episode
// identifier. A subtitle whose stem does not match the pattern, or whose
// identifier has no video, produces no rename at all.
func ResolveRenameVideo(subtitle string, pattern *regexp.Regexp, videos map[string]string) (string, bool) {
	id, ok := EpisodeID(subtitle, pattern)
	if !ok {
		return "", false
	}
	video, ok := videos[id]
	return video, ok
}

// RenameDestination derives the new file name for a matched subtitle. A
// non-empty tag replaces everything after the video stem with
// ".{tag}{last suffix}"; an empty tag keeps the subtitle's full compound
// suffix unchanged.
func RenameDestination(video, subtitle, tag string) string {
	stem := Stem(video)
	if tag != "" {
		return stem + "." + tag + filepath.Ext(subtitle)
	}
	return stem + CompoundSuffix(subtitle)
}

// ExtractionDestination derives the output path for one extracted subtitle
// track: the base video's path with its extension replaced by
// ".{tag}.{suffix}".
func ExtractionDestination(base, tag, suffix string) string {
	trimmed := strings.TrimSuffix(base, filepath.Ext(base))
	return trimmed + "." + tag + "." + suffix
}

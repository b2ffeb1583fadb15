package streams

import (
	"fmt"
	"sort"

	"submatch/internal/media/ffprobe"
)

// MissingMetadataError reports a subtitle stream that lacks the metadata
// needed to derive a naming tag.
type MissingMetadataError struct {
	Track int
	Field string
}

func (e *MissingMetadataError) Error() string {
	return fmt.Sprintf("subtitle track %d has no %s tag; configure extract.tags explicitly", e.Track, e.Field)
}

// TrackRangeError reports an explicit track index that does not exist in the
// probed video.
type TrackRangeError struct {
	Track int
	Count int
}

func (e *TrackRangeError) Error() string {
	return fmt.Sprintf("track %d not present: video has %d subtitle stream(s)", e.Track, e.Count)
}

// ResolveTags resolves the track-to-tag mapping for one probed video. A
// non-empty explicit map wins outright; its tags are used verbatim even when
// stream metadata disagrees, but every index must exist in the probe.
// Otherwise each subtitle stream derives "{language}-{title}" from its tags,
// indexed sequentially from 0 in probe order.
func ResolveTags(result ffprobe.Result, explicit map[int]string) (map[int]string, error) {
	if len(explicit) > 0 {
		count := len(result.Streams)
		for _, track := range SortedTracks(explicit) {
			if track >= count {
				return nil, &TrackRangeError{Track: track, Count: count}
			}
		}
		return explicit, nil
	}

	tags := make(map[int]string, len(result.Streams))
	for i, stream := range result.Streams {
		if stream.Tags.Language == "" {
			return nil, &MissingMetadataError{Track: i, Field: "language"}
		}
		if stream.Tags.Title == "" {
			return nil, &MissingMetadataError{Track: i, Field: "title"}
		}
		tags[i] = stream.Tags.Language + "-" + stream.Tags.Title
	}
	return tags, nil
}

// SortedTracks returns the map's track indices in ascending order, the
// emission order for planned operations.
func SortedTracks(tags map[int]string) []int {
	tracks := make([]int, 0, len(tags))
	for track := range tags {
		tracks = append(tracks, track)
	}
	sort.Ints(tracks)
	return tracks
}

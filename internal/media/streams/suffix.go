package streams

import (
	"fmt"

	"submatch/internal/media/ffprobe"
)

// codecSuffixes is the fixed codec-to-file-suffix table. Image-based codecs
// (hdmv_pgs_subtitle, dvd_subtitle) have no standalone text format and are
// deliberately absent.
var codecSuffixes = map[string]string{
	"subrip": "srt",
	"ass":    "ass",
}

// UnsupportedCodecError reports a subtitle codec with no configured suffix.
type UnsupportedCodecError struct {
	Track int
	Codec string
}

func (e *UnsupportedCodecError) Error() string {
	return fmt.Sprintf("subtitle track %d uses unsupported codec %q", e.Track, e.Codec)
}

// ResolveSuffix maps the codec of the subtitle stream at track to its output
// file suffix.
func ResolveSuffix(track int, result ffprobe.Result) (string, error) {
	if track < 0 || track >= len(result.Streams) {
		return "", &TrackRangeError{Track: track, Count: len(result.Streams)}
	}
	codec := result.Streams[track].CodecName
	suffix, ok := codecSuffixes[codec]
	if !ok {
		return "", &UnsupportedCodecError{Track: track, Codec: codec}
	}
	return suffix, nil
}

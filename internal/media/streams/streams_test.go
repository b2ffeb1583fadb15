package streams_test

import (
	"errors"
	"testing"

	"submatch/internal/media/ffprobe"
	"submatch/internal/media/streams"
)

func twoStreamResult() ffprobe.Result {
	return ffprobe.Result{Streams: []ffprobe.Stream{
		{Index: 2, CodecName: "subrip", CodecType: "subtitle", Tags: ffprobe.StreamTags{Language: "eng", Title: "Full"}},
		{Index: 3, CodecName: "ass", CodecType: "subtitle", Tags: ffprobe.StreamTags{Language: "jpn", Title: "Full"}},
	}}
}

func TestResolveTagsDerivesLanguageTitlePairs(t *testing.T) {
	tags, err := streams.ResolveTags(twoStreamResult(), nil)
	if err != nil {
		t.Fatalf("ResolveTags returned error: %v", err)
	}
	if tags[0] != "eng-Full" || tags[1] != "jpn-Full" {
		t.Fatalf("unexpected tags: %v", tags)
	}
	if len(tags) != 2 {
		t.Fatalf("unexpected tag count: %v", tags)
	}
}

func TestResolveTagsExplicitMapBypassesMetadata(t *testing.T) {
	explicit := map[int]string{0: "eng", 1: "jpn"}

	tags, err := streams.ResolveTags(twoStreamResult(), explicit)
	if err != nil {
		t.Fatalf("ResolveTags returned error: %v", err)
	}
	if tags[0] != "eng" || tags[1] != "jpn" {
		t.Fatalf("explicit tags must be used verbatim, got %v", tags)
	}
}

func TestResolveTagsExplicitMapValidatedAgainstProbe(t *testing.T) {
	explicit := map[int]string{0: "eng", 5: "ger"}

	_, err := streams.ResolveTags(twoStreamResult(), explicit)
	var rangeErr *streams.TrackRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected TrackRangeError, got %v", err)
	}
	if rangeErr.Track != 5 || rangeErr.Count != 2 {
		t.Fatalf("unexpected range error: %+v", rangeErr)
	}
}

func TestResolveTagsMissingLanguageFails(t *testing.T) {
	result := ffprobe.Result{Streams: []ffprobe.Stream{
		{CodecName: "subrip", Tags: ffprobe.StreamTags{Title: "Full"}},
	}}

	_, err := streams.ResolveTags(result, nil)
	var missing *streams.MissingMetadataError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingMetadataError, got %v", err)
	}
	if missing.Track != 0 || missing.Field != "language" {
		t.Fatalf("unexpected error detail: %+v", missing)
	}
}

func TestResolveTagsMissingTitleFails(t *testing.T) {
	result := ffprobe.Result{Streams: []ffprobe.Stream{
		{CodecName: "subrip", Tags: ffprobe.StreamTags{Language: "eng"}},
	}}

	_, err := streams.ResolveTags(result, nil)
	var missing *streams.MissingMetadataError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingMetadataError, got %v", err)
	}
	if missing.Field != "title" {
		t.Fatalf("unexpected field: %q", missing.Field)
	}
}

func TestResolveSuffixMapsKnownCodecs(t *testing.T) {
	result := twoStreamResult()

	srt, err := streams.ResolveSuffix(0, result)
	if err != nil || srt != "srt" {
		t.Fatalf("ResolveSuffix(0) = %q, %v", srt, err)
	}
	ass, err := streams.ResolveSuffix(1, result)
	if err != nil || ass != "ass" {
		t.Fatalf("ResolveSuffix(1) = %q, %v", ass, err)
	}
}

func TestResolveSuffixUnknownCodecFails(t *testing.T) {
	result := ffprobe.Result{Streams: []ffprobe.Stream{
		{CodecName: "hdmv_pgs_subtitle"},
	}}

	_, err := streams.ResolveSuffix(0, result)
	var unsupported *streams.UnsupportedCodecError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedCodecError, got %v", err)
	}
	if unsupported.Codec != "hdmv_pgs_subtitle" {
		t.Fatalf("unexpected codec: %q", unsupported.Codec)
	}
}

func TestResolveSuffixOutOfRange(t *testing.T) {
	var rangeErr *streams.TrackRangeError
	if _, err := streams.ResolveSuffix(7, twoStreamResult()); !errors.As(err, &rangeErr) {
		t.Fatalf("expected TrackRangeError, got %v", err)
	}
}

func TestSortedTracksAscending(t *testing.T) {
	tracks := streams.SortedTracks(map[int]string{3: "c", 0: "a", 1: "b"})
	if len(tracks) != 3 || tracks[0] != 0 || tracks[1] != 1 || tracks[2] != 3 {
		t.Fatalf("unexpected order: %v", tracks)
	}
}

func TestDisplayLanguage(t *testing.T) {
	cases := map[string]string{
		"eng":      "English",
		"eng-Full": "English",
		"jpn-Full": "Japanese",
		"":         "",
		"mystery":  "",
	}
	for tag, want := range cases {
		if got := streams.DisplayLanguage(tag); got != want {
			t.Errorf("DisplayLanguage(%q) = %q, want %q", tag, got, want)
		}
	}
}

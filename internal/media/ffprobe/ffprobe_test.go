package ffprobe_test

import (
	"context"
	"testing"

	"submatch/internal/media/ffprobe"
)

const samplePayload = `{
  "streams": [
    {
      "index": 2,
      "codec_name": "subrip",
      "codec_type": "subtitle",
      "tags": {"language": "eng", "title": "Full"}
    },
    {
      "index": 3,
      "codec_name": "ass",
      "codec_type": "subtitle",
      "tags": {"language": "jpn", "title": "Full"}
    }
  ]
}`

func TestParseDecodesStreamsInOrder(t *testing.T) {
	result, err := ffprobe.Parse([]byte(samplePayload))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := result.SubtitleCount(); got != 2 {
		t.Fatalf("SubtitleCount = %d, want 2", got)
	}

	first := result.Streams[0]
	if first.Index != 2 || first.CodecName != "subrip" {
		t.Fatalf("unexpected first stream: %+v", first)
	}
	if first.Tags.Language != "eng" || first.Tags.Title != "Full" {
		t.Fatalf("unexpected first stream tags: %+v", first.Tags)
	}
	if result.Streams[1].CodecName != "ass" {
		t.Fatalf("unexpected second stream: %+v", result.Streams[1])
	}
}

func TestParseToleratesMissingTags(t *testing.T) {
	result, err := ffprobe.Parse([]byte(`{"streams": [{"index": 2, "codec_name": "subrip", "codec_type": "subtitle"}]}`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if result.Streams[0].Tags.Language != "" {
		t.Fatalf("expected empty language, got %q", result.Streams[0].Tags.Language)
	}
}

func TestParseRejectsMalformedPayload(t *testing.T) {
	if _, err := ffprobe.Parse([]byte(`{"streams": [`)); err == nil {
		t.Fatal("expected error for truncated payload")
	}
}

func TestInspectSubtitlesRejectsEmptyPath(t *testing.T) {
	if _, err := ffprobe.InspectSubtitles(context.Background(), "", "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

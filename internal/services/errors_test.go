package services_test

import (
	"errors"
	"testing"

	"submatch/internal/services"
)

func TestWrapTagsMarkerAndDetail(t *testing.T) {
	cause := errors.New("exit status 1")
	err := services.Wrap(services.ErrExternalTool, "ffprobe", "inspect", "video.mkv", cause)

	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool marker, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to survive")
	}
	want := "external tool error: ffprobe: inspect: video.mkv: exit status 1"
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWrapDefaultsMarkerAndDetail(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected default marker, got %v", err)
	}
	if err.Error() != "external tool error: service failure" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

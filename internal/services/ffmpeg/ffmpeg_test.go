package ffmpeg_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"submatch/internal/services"
	"submatch/internal/services/ffmpeg"
)

func TestSubtitleCopyArgs(t *testing.T) {
	args := ffmpeg.SubtitleCopyArgs("Show 05 .mkv", 1, "Show S01E05.jpn-Full.ass")

	want := []string{
		"-loglevel", "warning",
		"-i", "Show 05 .mkv",
		"-n",
		"-codec", "copy",
		"-map", "0:s:1",
		"Show S01E05.jpn-Full.ass",
	}
	if len(args) != len(want) {
		t.Fatalf("unexpected args: %v", args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("arg %d = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestAttachmentDumpArgs(t *testing.T) {
	args := ffmpeg.AttachmentDumpArgs("/abs/Show 05 .mkv")

	want := []string{"-dump_attachment:t", "", "-n", "-i", "/abs/Show 05 .mkv"}
	if len(args) != len(want) {
		t.Fatalf("unexpected args: %v", args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("arg %d = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestCommandLineQuotesWhitespaceAndEmpty(t *testing.T) {
	line := ffmpeg.CommandLine("ffmpeg", []string{"-dump_attachment:t", "", "-i", "Show 05 .mkv"})

	if line != "ffmpeg -dump_attachment:t '' -i 'Show 05 .mkv'" {
		t.Fatalf("unexpected command line: %q", line)
	}
}

func TestExecRunnerWrapsFailure(t *testing.T) {
	runner := ffmpeg.ExecRunner{Binary: "/nonexistent/ffmpeg"}

	err := runner.Run(context.Background(), t.TempDir(), []string{"-version"})
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "ffmpeg") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

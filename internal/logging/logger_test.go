package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"submatch/internal/logging"
	"submatch/internal/services"
)

func TestNewConsoleLoggerWritesSingleLine(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("planned extraction", logging.Int("operations", 3))

	got := buf.String()
	if !strings.Contains(got, "INF planned extraction") {
		t.Fatalf("unexpected output: %q", got)
	}
	if !strings.Contains(got, "operations=3") {
		t.Fatalf("missing attr in output: %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Fatalf("expected single line, got %q", got)
	}
}

func TestNewConsoleLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("suppressed")
	logger.Warn("visible")

	got := buf.String()
	if strings.Contains(got, "suppressed") {
		t.Fatalf("info record should have been filtered: %q", got)
	}
	if !strings.Contains(got, "WRN visible") {
		t.Fatalf("warn record missing: %q", got)
	}
}

func TestNewJSONLoggerEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hello", logging.String("video", "Show 01 .mkv"))

	got := buf.String()
	if !strings.Contains(got, `"msg":"hello"`) {
		t.Fatalf("unexpected json output: %q", got)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	ctx := services.WithRunID(context.Background(), "run-42")
	logging.WithContext(ctx, logger).Info("tick")

	if !strings.Contains(buf.String(), "run_id=run-42") {
		t.Fatalf("missing run id: %q", buf.String())
	}
}

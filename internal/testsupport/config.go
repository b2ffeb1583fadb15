package testsupport

import (
	"testing"

	"submatch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a validated config seeded with repository defaults and
// applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithTrackTags sets an explicit track-to-tag map on the test config.
func WithTrackTags(tags map[string]string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Extract.Tags = tags
	}
}

// WithTarget enables cross-series targeting on the test config.
func WithTarget(glob string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Extract.Target.Glob = glob
	}
}

// WithSubtitleRules replaces the rename rules on the test config.
func WithSubtitleRules(rules ...config.SubtitleRule) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Rename.Subtitles = rules
	}
}

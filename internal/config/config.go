package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Filename is the per-directory configuration file name.
const Filename = "submatch.toml"

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Target describes an optional second video series whose names become the
// canonical output names for extracted subtitles.
type Target struct {
	Glob           string `toml:"glob"`
	EpisodePattern string `toml:"episode_pattern"`
}

// Extract contains configuration for subtitle and attachment extraction.
type Extract struct {
	VideoGlob      string            `toml:"video_glob"`
	EpisodePattern string            `toml:"episode_pattern"`
	FontDir        string            `toml:"font_dir"`
	Tags           map[string]string `toml:"tags"`
	Target         Target            `toml:"target"`

	trackTags      map[int]string
	episodePattern *regexp.Regexp
	targetPattern  *regexp.Regexp
}

// SubtitleRule pairs a subtitle glob with the tag inserted into renamed
// files. An empty tag preserves the subtitle's existing compound suffix.
type SubtitleRule struct {
	Glob string `toml:"glob"`
	Tag  string `toml:"tag"`
}

// Rename contains configuration for matching subtitles to videos by episode.
type Rename struct {
	VideoGlob              string         `toml:"video_glob"`
	VideoEpisodePattern    string         `toml:"video_episode_pattern"`
	SubtitleEpisodePattern string         `toml:"subtitle_episode_pattern"`
	Subtitles              []SubtitleRule `toml:"subtitles"`

	videoPattern    *regexp.Regexp
	subtitlePattern *regexp.Regexp
}

// Config encapsulates all configuration values for submatch.
//
// Configuration sections:
//   - Logging: log format and level
//   - Extract: origin video glob, episode patterns, track tags, targeting
//   - Rename: video/subtitle globs, episode patterns, glob-to-tag rules
type Config struct {
	Logging Logging `toml:"logging"`
	Extract Extract `toml:"extract"`
	Rename  Rename  `toml:"rename"`
}

// Load reads, normalizes, and validates the configuration for dir. The
// returned bool reports whether a configuration file existed; when it did
// not, the returned config carries repository defaults so callers can decide
// whether to scaffold a template.
func Load(dir string) (*Config, string, bool, error) {
	cfg := Default()

	path := filepath.Join(dir, Filename)
	exists := true
	file, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		exists = false
	case err != nil:
		return nil, "", false, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, path, exists, nil
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}

	c.Extract.VideoGlob = strings.TrimSpace(c.Extract.VideoGlob)
	if c.Extract.VideoGlob == "" {
		c.Extract.VideoGlob = defaultVideoGlob
	}
	c.Extract.EpisodePattern = strings.TrimSpace(c.Extract.EpisodePattern)
	if c.Extract.EpisodePattern == "" {
		c.Extract.EpisodePattern = DefaultEpisodePattern
	}
	c.Extract.FontDir = strings.TrimSpace(c.Extract.FontDir)
	c.Extract.Target.Glob = strings.TrimSpace(c.Extract.Target.Glob)
	c.Extract.Target.EpisodePattern = strings.TrimSpace(c.Extract.Target.EpisodePattern)
	if c.Extract.Target.EpisodePattern == "" {
		c.Extract.Target.EpisodePattern = DefaultEpisodePattern
	}

	c.Rename.VideoGlob = strings.TrimSpace(c.Rename.VideoGlob)
	if c.Rename.VideoGlob == "" {
		c.Rename.VideoGlob = defaultVideoGlob
	}
	c.Rename.VideoEpisodePattern = strings.TrimSpace(c.Rename.VideoEpisodePattern)
	if c.Rename.VideoEpisodePattern == "" {
		c.Rename.VideoEpisodePattern = DefaultEpisodePattern
	}
	c.Rename.SubtitleEpisodePattern = strings.TrimSpace(c.Rename.SubtitleEpisodePattern)
	if c.Rename.SubtitleEpisodePattern == "" {
		c.Rename.SubtitleEpisodePattern = DefaultEpisodePattern
	}
	if len(c.Rename.Subtitles) == 0 {
		c.Rename.Subtitles = defaultSubtitleRules()
	}
}

// TrackTags returns the explicit track-to-tag mapping, or nil when tags are
// derived from stream metadata. Only valid after Load.
func (c *Config) TrackTags() map[int]string {
	return c.Extract.trackTags
}

// CrossSeries reports whether extracted subtitles are renamed after a second
// video series.
func (c *Config) CrossSeries() bool {
	return c.Extract.Target.Glob != ""
}

// OriginEpisodePattern returns the compiled origin video episode pattern.
func (c *Config) OriginEpisodePattern() *regexp.Regexp {
	return c.Extract.episodePattern
}

// TargetEpisodePattern returns the compiled target video episode pattern.
func (c *Config) TargetEpisodePattern() *regexp.Regexp {
	return c.Extract.targetPattern
}

// VideoEpisodePattern returns the compiled rename-mode video episode pattern.
func (c *Config) VideoEpisodePattern() *regexp.Regexp {
	return c.Rename.videoPattern
}

// SubtitleEpisodePattern returns the compiled subtitle episode pattern.
func (c *Config) SubtitleEpisodePattern() *regexp.Regexp {
	return c.Rename.subtitlePattern
}

// ExpandPath resolves a leading tilde against the current user's home
// directory and returns an absolute path.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", path, err)
	}
	return abs, nil
}

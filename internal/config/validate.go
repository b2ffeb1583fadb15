package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Validate ensures the configuration is usable and compiles the episode
// patterns and track tag map for later access.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateExtract(); err != nil {
		return err
	}
	if err := c.validateRename(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateExtract() error {
	if err := validateGlob("extract.video_glob", c.Extract.VideoGlob); err != nil {
		return err
	}

	pattern, err := compilePattern("extract.episode_pattern", c.Extract.EpisodePattern)
	if err != nil {
		return err
	}
	c.Extract.episodePattern = pattern

	if c.Extract.Target.Glob != "" {
		if err := validateGlob("extract.target.glob", c.Extract.Target.Glob); err != nil {
			return err
		}
	}
	target, err := compilePattern("extract.target.episode_pattern", c.Extract.Target.EpisodePattern)
	if err != nil {
		return err
	}
	c.Extract.targetPattern = target

	if len(c.Extract.Tags) > 0 {
		tags := make(map[int]string, len(c.Extract.Tags))
		for key, tag := range c.Extract.Tags {
			track, err := strconv.Atoi(strings.TrimSpace(key))
			if err != nil {
				return fmt.Errorf("extract.tags: track index %q is not an integer", key)
			}
			if track < 0 {
				return fmt.Errorf("extract.tags: track index %d must not be negative", track)
			}
			if strings.TrimSpace(tag) == "" {
				return fmt.Errorf("extract.tags: track %d has an empty tag", track)
			}
			tags[track] = strings.TrimSpace(tag)
		}
		c.Extract.trackTags = tags
	}
	return nil
}

func (c *Config) validateRename() error {
	if err := validateGlob("rename.video_glob", c.Rename.VideoGlob); err != nil {
		return err
	}

	video, err := compilePattern("rename.video_episode_pattern", c.Rename.VideoEpisodePattern)
	if err != nil {
		return err
	}
	c.Rename.videoPattern = video

	subtitle, err := compilePattern("rename.subtitle_episode_pattern", c.Rename.SubtitleEpisodePattern)
	if err != nil {
		return err
	}
	c.Rename.subtitlePattern = subtitle

	for i, rule := range c.Rename.Subtitles {
		if err := validateGlob(fmt.Sprintf("rename.subtitles[%d].glob", i), rule.Glob); err != nil {
			return err
		}
	}
	return nil
}

func compilePattern(field, pattern string) (*regexp.Regexp, error) {
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	if compiled.NumSubexp() < 1 {
		return nil, fmt.Errorf("%s: pattern %q needs a capture group for the episode identifier", field, pattern)
	}
	return compiled, nil
}

func validateGlob(field, glob string) error {
	if strings.TrimSpace(glob) == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if _, err := filepath.Match(glob, ""); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

package config

// DefaultEpisodePattern matches a whitespace-delimited two-digit token in a
// file stem. Group 1 is the episode identifier.
const DefaultEpisodePattern = `\s(\d{2})\s`

const (
	defaultVideoGlob = "*.mkv"
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Extract: Extract{
			VideoGlob:      defaultVideoGlob,
			EpisodePattern: DefaultEpisodePattern,
			Target: Target{
				EpisodePattern: DefaultEpisodePattern,
			},
		},
		Rename: Rename{
			VideoGlob:              defaultVideoGlob,
			VideoEpisodePattern:    DefaultEpisodePattern,
			SubtitleEpisodePattern: DefaultEpisodePattern,
		},
	}
}

// defaultSubtitleRules applies after decoding so that configured
// [[rename.subtitles]] tables replace the defaults instead of extending them.
func defaultSubtitleRules() []SubtitleRule {
	return []SubtitleRule{
		{Glob: "*.ass"},
		{Glob: "*.srt"},
	}
}

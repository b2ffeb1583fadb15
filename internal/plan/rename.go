package plan

import (
	"log/slog"
	"path/filepath"
	"regexp"

	"submatch/internal/episode"
	"submatch/internal/logging"
	"submatch/internal/naming"
)

// SubtitleRule pairs a subtitle glob with the tag inserted into renamed
// files.
type SubtitleRule struct {
	Glob string
	Tag  string
}

// RenameOperation renames one subtitle after its matched video.
type RenameOperation struct {
	Subtitle string
	Video    string
	NewName  string
}

// RenameGroup holds the outcome of one subtitle rule: the renames to apply
// and the matched files' leftovers, reported so the user sees what was
// skipped.
type RenameGroup struct {
	Rule       SubtitleRule
	Operations []RenameOperation
	Unmatched  []string
}

// RenamePlanner composes episode correlation and name resolution into rename
// operations for subtitle files.
type RenamePlanner struct {
	Videos  episode.Index
	Pattern *regexp.Regexp
	Logger  *slog.Logger
}

// Plan evaluates each rule in order against dir. Subtitles whose stem does
// not match the pattern, or whose episode has no video, produce no operation
// and are listed as unmatched.
func (p *RenamePlanner) Plan(dir string, rules []SubtitleRule) ([]RenameGroup, error) {
	logger := logging.NewComponentLogger(p.Logger, "rename")

	groups := make([]RenameGroup, 0, len(rules))
	for _, rule := range rules {
		subtitles, err := episode.Collect(dir, rule.Glob)
		if err != nil {
			return nil, err
		}

		group := RenameGroup{Rule: rule}
		for _, subtitle := range subtitles {
			video, ok := naming.ResolveRenameVideo(subtitle, p.Pattern, p.Videos)
			if !ok {
				group.Unmatched = append(group.Unmatched, subtitle)
				logger.Debug("no video for subtitle", logging.String("subtitle", subtitle))
				continue
			}
			newName := naming.RenameDestination(video, subtitle, rule.Tag)
			if newName == filepath.Base(subtitle) {
				// No-op rename; still planned so the preview shows the file
				// was matched.
				logger.Debug("subtitle already matches video name", logging.String("subtitle", subtitle))
			}
			group.Operations = append(group.Operations, RenameOperation{
				Subtitle: subtitle,
				Video:    video,
				NewName:  newName,
			})
		}
		groups = append(groups, group)
	}
	return groups, nil
}

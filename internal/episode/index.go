package episode

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"sort"

	"submatch/internal/logging"
	"submatch/internal/naming"
)

// Index maps an episode identifier to a single file path. Later paths in
// build order overwrite earlier ones.
type Index map[string]string

// Build constructs an Index from paths in the given order. Paths whose stem
// does not yield a group-1 capture are skipped. Duplicate identifiers are
// overwritten last-write-wins, with a warning naming both paths.
func Build(paths []string, pattern *regexp.Regexp, logger *slog.Logger) Index {
	logger = logging.NewComponentLogger(logger, "episode")

	index := make(Index)
	for _, path := range paths {
		id, ok := naming.EpisodeID(path, pattern)
		if !ok {
			continue
		}
		if previous, dup := index[id]; dup {
			logger.Warn("duplicate episode identifier",
				logging.String("episode", id),
				logging.String("kept", path),
				logging.String("discarded", previous),
			)
		}
		index[id] = path
	}
	return index
}

// Collect enumerates the files in dir matching glob, sorted lexicographically
// by path. This is the canonical input order for Build.
func Collect(dir, glob string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, glob))
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", glob, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Identifiers returns the index keys in sorted order, for deterministic
// reporting.
func (idx Index) Identifiers() []string {
	ids := make([]string, 0, len(idx))
	for id := range idx {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

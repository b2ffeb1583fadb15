package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"submatch/internal/episode"
	"submatch/internal/logging"
	"submatch/internal/plan"
	"submatch/internal/runlock"
)

func newRenameCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "rename [directory]",
		Short: "Rename subtitle files after their matching videos",
		Long: "Match subtitles to videos by episode identifier and rename each " +
			"subtitle to the video's stem plus the configured tag. Subtitles " +
			"with no matching video are reported and left untouched.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := env.setup(cmd, args)
			if err != nil || rc == nil {
				return err
			}
			out := cmd.OutOrStdout()

			videos, err := episode.Collect(rc.dir, rc.cfg.Rename.VideoGlob)
			if err != nil {
				return err
			}
			index := episode.Build(videos, rc.cfg.VideoEpisodePattern(), rc.logger)
			if len(index) == 0 {
				fmt.Fprintf(out, "No videos with episode identifiers match %q in %s\n", rc.cfg.Rename.VideoGlob, rc.dir)
				return nil
			}

			indexRows := make([][]string, 0, len(index))
			for _, id := range index.Identifiers() {
				indexRows = append(indexRows, []string{id, index[id]})
			}
			fmt.Fprintln(out, renderTable([]string{"Episode", "Video"}, indexRows))

			rules := make([]plan.SubtitleRule, 0, len(rc.cfg.Rename.Subtitles))
			for _, rule := range rc.cfg.Rename.Subtitles {
				rules = append(rules, plan.SubtitleRule{Glob: rule.Glob, Tag: rule.Tag})
			}

			planner := &plan.RenamePlanner{
				Videos:  index,
				Pattern: rc.cfg.SubtitleEpisodePattern(),
				Logger:  rc.logger,
			}
			groups, err := planner.Plan(rc.dir, rules)
			if err != nil {
				return err
			}

			for _, group := range groups {
				for _, subtitle := range group.Unmatched {
					fmt.Fprintf(out, "No match for %s\n", subtitle)
				}
				if len(group.Operations) == 0 {
					fmt.Fprintf(out, "No subtitle-video match found for subtitle glob: %s\n", group.Rule.Glob)
					continue
				}

				rows := make([][]string, 0, len(group.Operations))
				for _, op := range group.Operations {
					rows = append(rows, []string{filepath.Base(op.Subtitle), op.NewName})
				}
				fmt.Fprintln(out, renderTable([]string{"Subtitle", "New name"}, rows))

				ok, err := env.confirm(cmd, "Apply renaming?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, "Skipped.")
					continue
				}

				if err := applyRenames(rc, group.Operations); err != nil {
					return err
				}
				fmt.Fprintf(out, "Renamed %d subtitle(s).\n", len(group.Operations))
			}
			return nil
		},
	}
}

func applyRenames(rc *runContext, operations []plan.RenameOperation) error {
	lock, err := runlock.Acquire(rc.dir)
	if err != nil {
		return err
	}
	defer lock.Release()

	for _, op := range operations {
		dest := filepath.Join(filepath.Dir(op.Subtitle), op.NewName)
		if err := os.Rename(op.Subtitle, dest); err != nil {
			rc.logger.Warn("rename failed",
				logging.String("subtitle", op.Subtitle),
				logging.String("destination", dest),
				logging.Error(err),
			)
		}
	}
	return nil
}

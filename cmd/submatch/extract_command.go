package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"submatch/internal/episode"
	"submatch/internal/logging"
	"submatch/internal/media/streams"
	"submatch/internal/plan"
	"submatch/internal/runlock"
	"submatch/internal/services/ffmpeg"
)

func newExtractCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "extract [directory]",
		Short: "Extract subtitle tracks from videos into named files",
		Long: "Extract every configured subtitle track from the videos matching " +
			"extract.video_glob. Subtitle names come from the track tag map or " +
			"stream metadata, and optionally from a second video series sharing " +
			"episode identifiers with the origin files.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := env.setup(cmd, args)
			if err != nil || rc == nil {
				return err
			}
			out := cmd.OutOrStdout()

			videos, err := episode.Collect(rc.dir, rc.cfg.Extract.VideoGlob)
			if err != nil {
				return err
			}
			if len(videos) == 0 {
				fmt.Fprintf(out, "No videos match %q in %s\n", rc.cfg.Extract.VideoGlob, rc.dir)
				return nil
			}

			var targetIndex episode.Index
			if rc.cfg.CrossSeries() {
				targets, err := episode.Collect(rc.dir, rc.cfg.Extract.Target.Glob)
				if err != nil {
					return err
				}
				targetIndex = episode.Build(targets, rc.cfg.TargetEpisodePattern(), rc.logger)
			}

			planner := &plan.ExtractionPlanner{
				Prober:        plan.CommandProber{Binary: *env.ffprobeBinary},
				Logger:        rc.logger,
				ExplicitTags:  rc.cfg.TrackTags(),
				TargetIndex:   targetIndex,
				OriginPattern: rc.cfg.OriginEpisodePattern(),
			}
			operations, err := planner.Plan(rc.ctx, videos)
			if err != nil {
				return err
			}
			if len(operations) == 0 {
				fmt.Fprintln(out, "No subtitle tracks to extract.")
				return nil
			}

			rows := make([][]string, 0, len(operations))
			for _, op := range operations {
				rows = append(rows, []string{
					op.Video,
					strconv.Itoa(op.Track),
					op.Tag,
					streams.DisplayLanguage(op.Tag),
					op.Destination,
				})
			}
			fmt.Fprintln(out, "Subtitle extraction commands to be executed:")
			fmt.Fprintln(out, renderTable([]string{"Video", "Track", "Tag", "Language", "Destination"}, rows))

			ok, err := env.confirm(cmd, "Start subtitle extraction?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}

			lock, err := runlock.Acquire(rc.dir)
			if err != nil {
				return err
			}
			defer lock.Release()

			runner := ffmpeg.ExecRunner{Binary: *env.ffmpegBinary, Logger: rc.logger}
			failed := 0
			for _, op := range operations {
				if err := runner.Run(rc.ctx, "", op.Args); err != nil {
					// Each invocation is independent; a failure never stops
					// the batch.
					failed++
					rc.logger.Warn("extraction command failed",
						logging.String("video", op.Video),
						logging.Int("track", op.Track),
						logging.Error(err),
					)
				}
			}
			fmt.Fprintf(out, "Ran %d extraction command(s), %d failed.\n", len(operations), failed)
			return nil
		},
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"submatch/internal/config"
	"submatch/internal/episode"
	"submatch/internal/logging"
	"submatch/internal/plan"
	"submatch/internal/services/ffmpeg"
)

func newFontsCommand(env *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "fonts [directory]",
		Short: "Dump font attachments from videos into a fonts directory",
		Args:  cobra.MaximumNArgs(1),
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

			fontDir := rc.cfg.Extract.FontDir
			if fontDir == "" {
				fontDir = plan.DefaultFontDir(videos)
			} else if fontDir, err = config.ExpandPath(fontDir); err != nil {
				return err
			}

			dumps, err := plan.PlanFontDumps(videos)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "Font extraction commands to be executed:")
			for _, dump := range dumps {
				fmt.Fprintln(out, ffmpeg.CommandLine(*env.ffmpegBinary, dump.Args))
			}

			ok, err := env.confirm(cmd, fmt.Sprintf("Extract fonts to folder %q?", fontDir))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}

			if err := os.MkdirAll(fontDir, 0o755); err != nil {
				return fmt.Errorf("create font directory: %w", err)
			}

			runner := ffmpeg.ExecRunner{Binary: *env.ffmpegBinary, Logger: rc.logger}
			failed := 0
			for _, dump := range dumps {
				// ffmpeg names dumped attachments itself, so the command runs
				// from inside the font directory.
				if err := runner.Run(rc.ctx, fontDir, dump.Args); err != nil {
					failed++
					rc.logger.Warn("font dump failed",
						logging.String("video", dump.Video),
						logging.Error(err),
					)
				}
			}
			fmt.Fprintf(out, "Ran %d font dump(s), %d failed.\n", len(dumps), failed)
			return nil
		},
	}
}

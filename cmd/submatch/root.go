package main

import (
	"github.com/spf13/cobra"

	"submatch/internal/services/ffmpeg"
)

func newRootCommand() *cobra.Command {
	var assumeYes bool
	var ffmpegBinary string
	var ffprobeBinary string

	env := newCommandEnv(&assumeYes, &ffmpegBinary, &ffprobeBinary)

	rootCmd := &cobra.Command{
		Use:           "submatch",
		Short:         "Match videos to subtitle tracks and derive consistent file names",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Apply planned changes without prompting")
	rootCmd.PersistentFlags().StringVar(&ffmpegBinary, "ffmpeg", ffmpeg.DefaultBinary, "ffmpeg binary to run")
	rootCmd.PersistentFlags().StringVar(&ffprobeBinary, "ffprobe", "ffprobe", "ffprobe binary to run")

	rootCmd.AddCommand(newExtractCommand(env))
	rootCmd.AddCommand(newRenameCommand(env))
	rootCmd.AddCommand(newFontsCommand(env))
	rootCmd.AddCommand(newDepsCommand(env))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

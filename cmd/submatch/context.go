package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"submatch/internal/config"
	"submatch/internal/logging"
	"submatch/internal/services"
)

// commandEnv carries the persistent flag values shared by every subcommand.
type commandEnv struct {
	assumeYes     *bool
	ffmpegBinary  *string
	ffprobeBinary *string
}

func newCommandEnv(assumeYes *bool, ffmpegBinary, ffprobeBinary *string) *commandEnv {
	return &commandEnv{
		assumeYes:     assumeYes,
		ffmpegBinary:  ffmpegBinary,
		ffprobeBinary: ffprobeBinary,
	}
}

// runContext is the per-invocation state: the working directory, its
// configuration, a configured logger, and a correlation-carrying context.
type runContext struct {
	ctx    context.Context
	dir    string
	cfg    *config.Config
	logger *slog.Logger
}

// directoryArg resolves the optional positional working directory.
func directoryArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "."
}

// setup loads the directory configuration and builds the run state. When no
// configuration file exists it writes the sample template and returns a nil
// runContext with no error: the command should exit cleanly so the user can
// edit the template and re-run.
func (e *commandEnv) setup(cmd *cobra.Command, args []string) (*runContext, error) {
	dir := directoryArg(args)

	cfg, path, exists, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := config.CreateSample(path); err != nil {
			return nil, err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Configuration file doesn't exist.\n")
		fmt.Fprintf(out, "Template created at %s. Edit it and re-run.\n", path)
		return nil, nil
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	ctx := services.WithRunID(cmd.Context(), runID)

	return &runContext{
		ctx:    ctx,
		dir:    dir,
		cfg:    cfg,
		logger: logging.WithContext(ctx, logger),
	}, nil
}

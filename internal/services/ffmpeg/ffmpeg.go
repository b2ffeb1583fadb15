package ffmpeg

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"submatch/internal/logging"
	"submatch/internal/services"
)

// DefaultBinary is the ffmpeg executable resolved from PATH when no override
// is configured.
const DefaultBinary = "ffmpeg"

// SubtitleCopyArgs returns the argument list that copies one subtitle stream
// out of input into dest. The -n flag leaves existing destination files
// untouched, which is the only collision handling extraction has.
func SubtitleCopyArgs(input string, track int, dest string) []string {
	return []string{
		"-loglevel", "warning",
		"-i", input,
		"-n",
		"-codec", "copy",
		"-map", fmt.Sprintf("0:s:%d", track),
		dest,
	}
}

// AttachmentDumpArgs returns the argument list that dumps every attachment
// of input into the working directory, named after each attachment's
// filename field. The input path should be absolute because the command runs
// from the font directory.
func AttachmentDumpArgs(input string) []string {
	return []string{
		"-dump_attachment:t", "",
		"-n",
		"-i", input,
	}
}

// CommandLine renders a binary and its arguments the way a shell user would
// type them, quoting arguments that contain whitespace. Display only.
func CommandLine(binary string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, arg := range append([]string{binary}, args...) {
		if arg == "" || strings.ContainsAny(arg, " \t") {
			arg = "'" + arg + "'"
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// Runner executes a prepared ffmpeg invocation.
type Runner interface {
	Run(ctx context.Context, dir string, args []string) error
}

// ExecRunner runs ffmpeg via os/exec. An empty Dir runs in the caller's
// working directory.
type ExecRunner struct {
	Binary string
	Logger *slog.Logger
}

// Run executes the command to completion. The combined output is included in
// the returned error; callers applying a batch log it and continue.
func (r ExecRunner) Run(ctx context.Context, dir string, args []string) error {
	binary := strings.TrimSpace(r.Binary)
	if binary == "" {
		binary = DefaultBinary
	}

	logger := logging.NewComponentLogger(r.Logger, "ffmpeg")
	logger.Debug("running command", logging.String("command", CommandLine(binary, args)))

	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		return services.Wrap(services.ErrExternalTool, "ffmpeg", "run", strings.TrimSpace(string(output)), err)
	}
	return nil
}

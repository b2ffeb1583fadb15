package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// Requirement defines an external tool submatch shells out to.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Check resolves ffmpeg and ffprobe the same way command execution will:
// absolute paths are verified directly, bare names through PATH lookup.
func Check(ffmpegBinary, ffprobeBinary string) []Status {
	return CheckBinaries([]Requirement{
		{
			Name:        "FFmpeg",
			Command:     ffmpegBinary,
			Description: "Extracts subtitle tracks and font attachments",
		},
		{
			Name:        "FFprobe",
			Command:     ffprobeBinary,
			Description: "Inspects subtitle stream metadata",
		},
	})
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		resolved, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Command = resolved
		status.Available = true
		results = append(results, status)
	}
	return results
}

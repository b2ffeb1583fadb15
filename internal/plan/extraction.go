package plan

import (
	"context"
	"log/slog"
	"path/filepath"
	"regexp"

	"submatch/internal/episode"
	"submatch/internal/logging"
	"submatch/internal/media/ffprobe"
	"submatch/internal/media/streams"
	"submatch/internal/naming"
	"submatch/internal/services"
	"submatch/internal/services/ffmpeg"
)

// Prober retrieves subtitle stream metadata for a video.
type Prober interface {
	InspectSubtitles(ctx context.Context, path string) (ffprobe.Result, error)
}

// CommandProber probes videos by executing ffprobe.
type CommandProber struct {
	Binary string
}

func (p CommandProber) InspectSubtitles(ctx context.Context, path string) (ffprobe.Result, error) {
	return ffprobe.InspectSubtitles(ctx, p.Binary, path)
}

// ExtractionOperation is one subtitle track copied out of one video.
type ExtractionOperation struct {
	Video       string
	Track       int
	Tag         string
	Suffix      string
	Destination string
	Args        []string
}

// ExtractionPlanner composes episode correlation, stream tag resolution, and
// name resolution into a list of extraction operations.
type ExtractionPlanner struct {
	Prober        Prober
	Logger        *slog.Logger
	ExplicitTags  map[int]string
	TargetIndex   episode.Index
	OriginPattern *regexp.Regexp
}

// Plan emits one operation per tag-map entry per video, videos in input
// order, tracks ascending. Operations are never deduplicated; destination
// collisions are left to ffmpeg's no-overwrite flag. Any tag, suffix, or
// probe failure aborts planning before anything runs.
func (p *ExtractionPlanner) Plan(ctx context.Context, videos []string) ([]ExtractionOperation, error) {
	logger := logging.NewComponentLogger(p.Logger, "extract")

	var operations []ExtractionOperation
	for _, video := range videos {
		result, err := p.Prober.InspectSubtitles(ctx, video)
		if err != nil {
			return nil, services.Wrap(services.ErrExternalTool, "extract", "probe", video, err)
		}

		tags, err := streams.ResolveTags(result, p.ExplicitTags)
		if err != nil {
			return nil, services.Wrap(services.ErrValidation, "extract", "resolve tags", video, err)
		}

		base := naming.ResolveExtractionBase(video, p.OriginPattern, p.TargetIndex)
		if base != video {
			logger.Debug("targeting second series",
				logging.String("origin", video),
				logging.String("target", base),
			)
		}

		for _, track := range streams.SortedTracks(tags) {
			suffix, err := streams.ResolveSuffix(track, result)
			if err != nil {
				return nil, services.Wrap(services.ErrValidation, "extract", "resolve suffix", video, err)
			}
			dest := naming.ExtractionDestination(base, tags[track], suffix)
			operations = append(operations, ExtractionOperation{
				Video:       video,
				Track:       track,
				Tag:         tags[track],
				Suffix:      suffix,
				Destination: dest,
				Args:        ffmpeg.SubtitleCopyArgs(video, track, dest),
			})
		}
	}
	return operations, nil
}

// FontDump is one attachment-dump invocation for one video.
type FontDump struct {
	Video string
	Args  []string
}

// PlanFontDumps prepares attachment dumps for each video. Paths are resolved
// to absolute form because the commands run from the font directory.
func PlanFontDumps(videos []string) ([]FontDump, error) {
	dumps := make([]FontDump, 0, len(videos))
	for _, video := range videos {
		abs, err := filepath.Abs(video)
		if err != nil {
			return nil, services.Wrap(services.ErrValidation, "fonts", "resolve path", video, err)
		}
		dumps = append(dumps, FontDump{
			Video: video,
			Args:  ffmpeg.AttachmentDumpArgs(abs),
		})
	}
	return dumps, nil
}

// DefaultFontDir returns the attachment destination used when none is
// configured: a "fonts" directory next to the first video.
func DefaultFontDir(videos []string) string {
	if len(videos) == 0 {
		return "fonts"
	}
	return filepath.Join(filepath.Dir(videos[0]), "fonts")
}

// Package convert runs the full SCC conversion pipeline: decode the byte
// stream, transform snapshots into styled cues, optionally flatten styling,
// and serialize to the requested output format.
package convert

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"popon/internal/caption"
	"popon/internal/cea608"
	"popon/internal/config"
	"popon/internal/filter"
	"popon/internal/srt"
	"popon/internal/timecode"
	"popon/internal/transform"
	"popon/internal/webvtt"
)

// Options control one conversion run.
type Options struct {
	Rate        timecode.Rate
	CheckParity bool
	Format      string
	KeepStyles  bool
	TailSeconds float64
}

// OptionsFromConfig derives pipeline options from application config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Rate:        timecode.Rate{FPS: cfg.Decode.FrameRate, DropFrame: cfg.Decode.DropFrame},
		CheckParity: cfg.Decode.ParityCheck,
		Format:      cfg.Output.Format,
		KeepStyles:  cfg.Output.KeepStyles,
		TailSeconds: cfg.Output.TailSeconds,
	}
}

// Result summarizes a completed conversion.
type Result struct {
	Captions []caption.Caption
	CueCount int
	// Duration is the end time of the last cue.
	Duration time.Duration
}

// Run decodes an SCC stream from r and writes serialized cues to w.
func Run(r io.Reader, w io.Writer, opts Options) (Result, error) {
	captions, err := Cues(r, opts)
	if err != nil {
		return Result{}, err
	}

	switch strings.ToLower(opts.Format) {
	case "vtt", "":
		err = webvtt.Write(w, captions)
	case "srt":
		err = srt.Write(w, captions)
	default:
		return Result{}, fmt.Errorf("unsupported output format %q", opts.Format)
	}
	if err != nil {
		return Result{}, fmt.Errorf("serialize captions: %w", err)
	}

	return summarize(captions), nil
}

// Cues runs the pipeline up to, but not including, serialization.
func Cues(r io.Reader, opts Options) ([]caption.Caption, error) {
	raw, err := cea608.Decode(r, opts.Rate, opts.CheckParity)
	if err != nil {
		return nil, err
	}

	tail := opts.TailSeconds
	if tail <= 0 {
		tail = transform.DefaultTailSeconds
	}
	captions, err := transform.CaptionsTail(raw, tail)
	if err != nil {
		return nil, err
	}

	if !opts.KeepStyles {
		captions = filter.Apply(captions)
	}
	return captions, nil
}

func summarize(captions []caption.Caption) Result {
	result := Result{Captions: captions, CueCount: len(captions)}
	for _, c := range captions {
		if end := time.Duration(c.End.Seconds() * float64(time.Second)); end > result.Duration {
			result.Duration = end
		}
	}
	return result
}

// OutputPath derives the output file path for a source: the source name
// with the format's extension, placed in outputDir when set or next to
// the source otherwise.
func OutputPath(source, outputDir, format string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + "." + strings.ToLower(format)
	if outputDir == "" {
		return filepath.Join(filepath.Dir(source), base)
	}
	return filepath.Join(outputDir, base)
}

package subtitles

import (
	"fmt"
	"log/slog"
	"time"

	"subalch/internal/logging"
	"subalch/internal/merge"
	"subalch/internal/srt"
	"subalch/internal/transcript"
)

// DefaultGapThresholdMS is the merge threshold used when none is configured.
const DefaultGapThresholdMS int64 = 100

// Result reports the generated subtitle file and summary stats.
type Result struct {
	Key          string
	SubtitlePath string
	Fragments    int
	SegmentCount int
	Duration     time.Duration
}

// Generator merges transcripts into subtitle cues.
type Generator struct {
	threshold int64
	logger    *slog.Logger
}

// NewGenerator returns a Generator joining fragments whose gap is at most
// thresholdMS milliseconds.
func NewGenerator(thresholdMS int64, logger *slog.Logger) *Generator {
	return &Generator{
		threshold: thresholdMS,
		logger:    logging.NewComponentLogger(logger, "subtitles"),
	}
}

// Threshold returns the configured gap threshold in milliseconds.
func (g *Generator) Threshold() int64 {
	return g.threshold
}

// Generate merges t into numbered cues.
func (g *Generator) Generate(t transcript.Transcript) ([]srt.Cue, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	timeline, text, err := merge.Merge(t.Timeline, t.Words, g.threshold)
	if err != nil {
		return nil, fmt.Errorf("merge %s: %w", t.Key, err)
	}
	cues, err := srt.FromMerged(timeline, text)
	if err != nil {
		return nil, fmt.Errorf("build cues for %s: %w", t.Key, err)
	}

	g.logger.Debug("subtitle merge decision",
		logging.String(logging.FieldDecisionType, "subtitle_merge"),
		logging.String(logging.FieldTranscriptKey, t.Key),
		logging.Int64("gap_threshold_ms", g.threshold),
		logging.Int("fragments", len(t.Words)),
		logging.Int("segments", len(cues)),
	)
	return cues, nil
}

// WriteSRT generates cues for t and writes them to path.
func (g *Generator) WriteSRT(path string, t transcript.Transcript) (Result, error) {
	cues, err := g.Generate(t)
	if err != nil {
		return Result{}, err
	}
	if err := srt.WriteFile(path, cues); err != nil {
		return Result{}, fmt.Errorf("write subtitles for %s: %w", t.Key, err)
	}
	result := Result{
		Key:          t.Key,
		SubtitlePath: path,
		Fragments:    len(t.Words),
		SegmentCount: len(cues),
		Duration:     time.Duration(t.Duration()) * time.Millisecond,
	}
	g.logger.Info("subtitles written",
		logging.String(logging.FieldEventType, "subtitle_written"),
		logging.String(logging.FieldTranscriptKey, t.Key),
		logging.String("subtitle_file", path),
		logging.Int("segments", result.SegmentCount),
		logging.Duration("media_duration", result.Duration),
	)
	return result, nil
}

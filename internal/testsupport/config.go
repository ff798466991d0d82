package testsupport

import (
	"path/filepath"
	"testing"

	"subalch/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a default config whose paths live under a fresh temp
// directory, then applies opts.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.TranscriptDir = filepath.Join(base, "transcripts")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.StorePath = filepath.Join(base, "transcripts.db")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithGapThreshold overrides the merge gap threshold.
func WithGapThreshold(ms int64) ConfigOption {
	return func(c *config.Config) {
		c.Merge.GapThresholdMS = ms
	}
}

// WithSTTCommand points the STT adapter at a different executable.
func WithSTTCommand(command string) ConfigOption {
	return func(c *config.Config) {
		c.STT.Command = command
	}
}

package stt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"subalch/internal/logging"
	"subalch/internal/services"
	"subalch/internal/transcript"
)

// Transcriber turns an audio file into a timed transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (transcript.Transcript, error)
}

// CommandRunner executes name with args and returns its stdout.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// CommandTranscriber shells out to the configured recognizer.
type CommandTranscriber struct {
	cfg    Config
	logger *slog.Logger
	runner CommandRunner
}

// NewCommandTranscriber creates a transcriber for cfg. A nil logger discards
// output.
func NewCommandTranscriber(cfg Config, logger *slog.Logger) *CommandTranscriber {
	return &CommandTranscriber{
		cfg:    cfg.withDefaults(),
		logger: logging.NewComponentLogger(logger, "stt"),
		runner: runCommand,
	}
}

// WithCommandRunner sets a custom command runner (for testing).
func (t *CommandTranscriber) WithCommandRunner(runner CommandRunner) {
	if runner != nil {
		t.runner = runner
	}
}

// Model returns the configured model name for logging.
func (t *CommandTranscriber) Model() string {
	return t.cfg.Model
}

// Transcribe runs the recognizer on audioPath and parses its output. The
// transcript key defaults to the audio file name.
func (t *CommandTranscriber) Transcribe(ctx context.Context, audioPath string) (transcript.Transcript, error) {
	if strings.TrimSpace(audioPath) == "" {
		return transcript.Transcript{}, services.Wrap(services.ErrValidation, "stt", "transcribe", "audio path is empty", nil)
	}
	if _, err := os.Stat(audioPath); err != nil {
		return transcript.Transcript{}, services.Wrap(services.ErrNotFound, "stt", "transcribe", "audio file unavailable", err)
	}

	ctx, cancel := context.WithTimeout(ctx, t.cfg.Timeout)
	defer cancel()

	started := time.Now()
	args := t.cfg.args(audioPath)
	t.logger.Info("transcription started",
		logging.String(logging.FieldEventType, "stt_start"),
		logging.String("command", t.cfg.Command),
		logging.String("model", t.cfg.Model),
		logging.String("audio", audioPath),
	)

	stdout, err := t.runner(ctx, t.cfg.Command, args...)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return transcript.Transcript{}, services.Wrap(services.ErrTimeout, "stt", "run "+t.cfg.Command,
				fmt.Sprintf("no result after %s", t.cfg.Timeout), err)
		}
		return transcript.Transcript{}, services.Wrap(services.ErrExternalTool, "stt", "run "+t.cfg.Command, "", err)
	}

	result, err := transcript.ParseModelOutput(stdout, transcript.KeyFromPath(audioPath))
	if err != nil {
		return transcript.Transcript{}, fmt.Errorf("parse %s output: %w", t.cfg.Command, err)
	}

	t.logger.Info("transcription completed",
		logging.String(logging.FieldEventType, "stt_complete"),
		logging.String(logging.FieldTranscriptKey, result.Key),
		logging.Int("words", len(result.Words)),
		logging.Int64("audio_ms", result.Duration()),
		logging.Duration("elapsed", time.Since(started)),
	)
	return result, nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			return nil, fmt.Errorf("%w: %s", err, detail)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"subalch/internal/merge"
	"subalch/internal/services"
)

// Transcript is one recognized recording.
type Transcript struct {
	Key      string
	Words    []string
	Timeline []merge.Span
}

// Validate checks that words and timeline are parallel and the timeline is
// well formed.
func (t Transcript) Validate() error {
	if strings.TrimSpace(t.Key) == "" {
		return fmt.Errorf("%w: transcript key is empty", services.ErrValidation)
	}
	if len(t.Words) != len(t.Timeline) {
		return fmt.Errorf("%w: transcript %s has %d words and %d timestamps", services.ErrValidation, t.Key, len(t.Words), len(t.Timeline))
	}
	if err := merge.ValidateTimeline(t.Timeline); err != nil {
		return fmt.Errorf("%w: transcript %s: %w", services.ErrValidation, t.Key, err)
	}
	return nil
}

// Text joins the words without separators.
func (t Transcript) Text() string {
	return strings.Join(t.Words, "")
}

// Duration returns the end of the last word in milliseconds.
func (t Transcript) Duration() int64 {
	if len(t.Timeline) == 0 {
		return 0
	}
	return t.Timeline[len(t.Timeline)-1].End
}

// fileFormat mirrors the on-disk JSON: a text array and an N x 2 timeline.
type fileFormat struct {
	Key      string     `json:"key"`
	Text     []string   `json:"text"`
	Timeline [][2]int64 `json:"timeline"`
}

func (t Transcript) MarshalJSON() ([]byte, error) {
	out := fileFormat{Key: t.Key, Text: t.Words, Timeline: make([][2]int64, len(t.Timeline))}
	if out.Text == nil {
		out.Text = []string{}
	}
	for i, span := range t.Timeline {
		out.Timeline[i] = [2]int64{span.Start, span.End}
	}
	return json.Marshal(out)
}

func (t *Transcript) UnmarshalJSON(data []byte) error {
	var in fileFormat
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	t.Key = in.Key
	t.Words = in.Text
	t.Timeline = make([]merge.Span, len(in.Timeline))
	for i, pair := range in.Timeline {
		t.Timeline[i] = merge.Span{Start: pair[0], End: pair[1]}
	}
	return nil
}

// ReadJSON loads and validates a transcript file. A missing key defaults to
// the file name without extension.
func ReadJSON(path string) (Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Transcript{}, fmt.Errorf("read transcript: %w", err)
	}
	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return Transcript{}, fmt.Errorf("%w: parse transcript %s: %w", services.ErrValidation, path, err)
	}
	if strings.TrimSpace(t.Key) == "" {
		t.Key = KeyFromPath(path)
	}
	if err := t.Validate(); err != nil {
		return Transcript{}, err
	}
	return t, nil
}

// WriteJSON stores t at path, creating parent directories.
func WriteJSON(path string, t Transcript) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure transcript dir: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

// KeyFromPath derives a transcript key from a file name.
func KeyFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

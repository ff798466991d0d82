// Package srt renders and parses SubRip subtitle files with millisecond
// timestamps.
package srt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"subalch/internal/merge"
)

// Cue is one numbered subtitle entry. Start and End are milliseconds.
type Cue struct {
	Index int
	Start int64
	End   int64
	Text  string
}

// FromMerged builds 1-based cues from a merged timeline and its text.
func FromMerged(timeline []merge.Span, text []string) ([]Cue, error) {
	if len(timeline) != len(text) {
		return nil, fmt.Errorf("build cues: %d spans, %d lines", len(timeline), len(text))
	}
	cues := make([]Cue, 0, len(timeline))
	for i, span := range timeline {
		cues = append(cues, Cue{Index: i + 1, Start: span.Start, End: span.End, Text: text[i]})
	}
	return cues, nil
}

// FormatTimestamp renders milliseconds as HH:MM:SS,mmm. Hours are not
// wrapped, so recordings longer than a day keep counting.
func FormatTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	hours := ms / 3_600_000
	minutes := ms / 60_000 % 60
	seconds := ms / 1000 % 60
	millis := ms % 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// ParseTimestamp reads HH:MM:SS,mmm (a period is accepted in place of the
// comma) and returns milliseconds.
func ParseTimestamp(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	clock, frac, ok := strings.Cut(value, ",")
	if !ok {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(clock, ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	var parts [4]int64
	for i, text := range append(hms, frac) {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid timestamp %q", value)
		}
		parts[i] = n
	}
	if parts[1] > 59 || parts[2] > 59 || parts[3] > 999 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	return ((parts[0]*60+parts[1])*60+parts[2])*1000 + parts[3], nil
}

// Render writes cues in SubRip format.
func Render(w io.Writer, cues []Cue) error {
	bw := bufio.NewWriter(w)
	for _, cue := range cues {
		if _, err := fmt.Fprintf(bw, "%d\n%s --> %s\n%s\n\n", cue.Index, FormatTimestamp(cue.Start), FormatTimestamp(cue.End), cue.Text); err != nil {
			return fmt.Errorf("write cue %d: %w", cue.Index, err)
		}
	}
	return bw.Flush()
}

// WriteFile renders cues to path, creating parent directories. The file is
// written to a temporary sibling first and renamed into place.
func WriteFile(path string, cues []Cue) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure srt dir: %w", err)
	}
	var buf bytes.Buffer
	if err := Render(&buf, cues); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace srt: %w", err)
	}
	return nil
}

// Parse reads SubRip cues. Blocks without a valid index or timing line are
// skipped.
func Parse(r io.Reader) ([]Cue, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}
	content := strings.TrimSpace(strings.ReplaceAll(string(data), "\r\n", "\n"))
	content = strings.TrimPrefix(content, "\ufeff")
	if content == "" {
		return nil, nil
	}

	var cues []Cue
	for _, block := range strings.Split(content, "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			continue
		}
		index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil {
			continue
		}
		startText, endText, ok := strings.Cut(lines[1], "-->")
		if !ok {
			continue
		}
		start, err := ParseTimestamp(startText)
		if err != nil {
			continue
		}
		end, err := ParseTimestamp(endText)
		if err != nil {
			continue
		}
		cues = append(cues, Cue{
			Index: index,
			Start: start,
			End:   end,
			Text:  strings.Join(lines[2:], "\n"),
		})
	}
	return cues, nil
}

// ReadFile parses the SubRip file at path.
func ReadFile(path string) ([]Cue, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open srt: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Text joins the text of every cue in order without separators.
func Text(cues []Cue) string {
	var sb strings.Builder
	for _, cue := range cues {
		sb.WriteString(strings.ReplaceAll(cue.Text, "\n", ""))
	}
	return sb.String()
}

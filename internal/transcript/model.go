package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"subalch/internal/merge"
	"subalch/internal/services"
)

// modelResult is one entry of the speech-to-text command output:
//
//	[{"key": "clip", "text": "哦 对 太", "timestamp": [[0, 100], [300, 800], ...]}]
type modelResult struct {
	Key       string     `json:"key"`
	Text      string     `json:"text"`
	Timestamp [][2]int64 `json:"timestamp"`
}

// ParseModelOutput decodes the recognizer's JSON result. The payload must be
// a list whose first element is an object; its space separated text becomes
// the word sequence. fallbackKey is used when the result carries no key.
func ParseModelOutput(data []byte, fallbackKey string) (Transcript, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return Transcript{}, fmt.Errorf("%w: model output: expected a JSON list", services.ErrValidation)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return Transcript{}, fmt.Errorf("%w: model output: %w", services.ErrValidation, err)
	}
	if len(raw) == 0 {
		return Transcript{}, fmt.Errorf("%w: model output: empty result list", services.ErrValidation)
	}
	first := bytes.TrimSpace(raw[0])
	if len(first) == 0 || first[0] != '{' {
		return Transcript{}, fmt.Errorf("%w: model output: expected an object in the result list", services.ErrValidation)
	}
	var res modelResult
	if err := json.Unmarshal(first, &res); err != nil {
		return Transcript{}, fmt.Errorf("%w: model output: %w", services.ErrValidation, err)
	}

	t := Transcript{
		Key:      strings.TrimSpace(res.Key),
		Words:    strings.Fields(res.Text),
		Timeline: make([]merge.Span, len(res.Timestamp)),
	}
	if t.Key == "" {
		t.Key = fallbackKey
	}
	for i, pair := range res.Timestamp {
		t.Timeline[i] = merge.Span{Start: pair[0], End: pair[1]}
	}
	if err := t.Validate(); err != nil {
		return Transcript{}, err
	}
	return t, nil
}

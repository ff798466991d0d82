package merge

import (
	"fmt"
	"strings"
)

// Timeline collapses each instruction's run into a single span that starts
// with its first entry and ends with its last.
func Timeline(timeline []Span, instr []Instruction) ([]Span, error) {
	if err := ValidateInstructions(instr, len(timeline)); err != nil {
		return nil, err
	}
	out := make([]Span, 0, len(instr))
	for _, in := range instr {
		out = append(out, Span{Start: timeline[in.First].Start, End: timeline[in.Last].End})
	}
	return out, nil
}

// Text concatenates each instruction's run of fragments without a separator.
func Text(text []string, instr []Instruction) ([]string, error) {
	if err := ValidateInstructions(instr, len(text)); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(instr))
	for _, in := range instr {
		out = append(out, strings.Join(text[in.First:in.Last+1], ""))
	}
	return out, nil
}

// Merge runs the full pipeline over a parallel timeline and text slice.
func Merge(timeline []Span, text []string, threshold int64) ([]Span, []string, error) {
	if len(timeline) != len(text) {
		return nil, nil, fmt.Errorf("%w: %d timeline entries, %d text fragments", ErrInvalidInput, len(timeline), len(text))
	}
	gaps, err := ClassifyGaps(timeline, threshold)
	if err != nil {
		return nil, nil, err
	}
	instr := GroupInstructions(gaps)
	mergedTimeline, err := Timeline(timeline, instr)
	if err != nil {
		return nil, nil, err
	}
	mergedText, err := Text(text, instr)
	if err != nil {
		return nil, nil, err
	}
	if len(mergedTimeline) != len(mergedText) {
		return nil, nil, fmt.Errorf("%w: %d merged spans, %d merged lines", ErrLengthMismatch, len(mergedTimeline), len(mergedText))
	}
	return mergedTimeline, mergedText, nil
}

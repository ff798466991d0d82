package align

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports an alignment vector that Align could not have
// produced.
var ErrInvalidInput = errors.New("invalid alignment input")

// Mismatch pairs a run of unmatched ground-truth indices with the predicted
// indices that lie between the matches surrounding the run.
//
// Predicted is a contiguous ascending range. It is empty (but non-nil) when
// the surrounding matches are adjacent in the predicted sequence, which means
// the ground-truth characters were dropped rather than misrecognized.
type Mismatch struct {
	Truth     []int `json:"truth"`
	Predicted []int `json:"predicted"`
}

// Mismatches groups the unmatched runs of alignment into clusters, ordered
// left to right.
//
// predictedLen is the length of the predicted sequence the alignment refers
// to. A trailing unmatched run, one that no later match closes, is paired
// with the remaining predicted tail. Passing a negative predictedLen skips
// range checks and drops a trailing run.
func Mismatches(alignment []int, predictedLen int) ([]Mismatch, error) {
	if err := validateAlignment(alignment, predictedLen); err != nil {
		return nil, err
	}

	var out []Mismatch
	lastPred := -1
	var run []int
	for idxTruth, idxPred := range alignment {
		if idxPred == NoMatch {
			run = append(run, idxTruth)
			continue
		}
		if len(run) > 0 {
			out = append(out, Mismatch{Truth: run, Predicted: span(lastPred+1, idxPred)})
			run = nil
		}
		lastPred = idxPred
	}
	if len(run) > 0 && predictedLen >= 0 {
		out = append(out, Mismatch{Truth: run, Predicted: span(lastPred+1, predictedLen)})
	}
	return out, nil
}

func validateAlignment(alignment []int, predictedLen int) error {
	last := -1
	for i, idx := range alignment {
		if idx == NoMatch {
			continue
		}
		if idx < 0 {
			return fmt.Errorf("%w: entry %d has negative index %d", ErrInvalidInput, i, idx)
		}
		if predictedLen >= 0 && idx >= predictedLen {
			return fmt.Errorf("%w: entry %d index %d exceeds predicted length %d", ErrInvalidInput, i, idx, predictedLen)
		}
		if idx <= last {
			return fmt.Errorf("%w: entry %d index %d does not follow %d", ErrInvalidInput, i, idx, last)
		}
		last = idx
	}
	return nil
}

// span returns [from, to) as a slice; empty when to <= from.
func span(from, to int) []int {
	if to < from {
		to = from
	}
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

// Package review compares a recognized character sequence against its
// ground truth and reports which errors look like homophone substitutions.
package review

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"subalch/internal/align"
	"subalch/internal/phonetic"
)

// Correction is one mismatch cluster with the text on both sides.
type Correction struct {
	align.Mismatch
	TruthText     string `json:"truth_text"`
	PredictedText string `json:"predicted_text"`
	// Similarity averages, over the truth characters, the best phonetic
	// score any predicted character in the cluster reaches. Zero when the
	// prediction dropped the characters or none has a pinyin reading.
	Similarity float64 `json:"similarity"`
}

// Dropped reports whether the recognizer emitted nothing for the cluster.
func (c Correction) Dropped() bool {
	return len(c.Predicted) == 0
}

// Report summarizes one truth/prediction comparison.
type Report struct {
	TruthLen     int          `json:"truth_len"`
	PredictedLen int          `json:"predicted_len"`
	Matched      int          `json:"matched"`
	Accuracy     float64      `json:"accuracy"`
	Corrections  []Correction `json:"corrections"`
}

// Review aligns predicted against truth and scores every mismatch cluster
// with w. Accuracy is matched characters over the truth length, or 1 for an
// empty truth.
func Review(truth, predicted []string, w phonetic.Weights) (Report, error) {
	alignment := align.Align(truth, predicted)
	mismatches, err := align.Mismatches(alignment, len(predicted))
	if err != nil {
		return Report{}, fmt.Errorf("group mismatches: %w", err)
	}

	report := Report{
		TruthLen:     len(truth),
		PredictedLen: len(predicted),
		Matched:      align.Matched(alignment),
		Accuracy:     1,
		Corrections:  make([]Correction, 0, len(mismatches)),
	}
	if len(truth) > 0 {
		report.Accuracy = float64(report.Matched) / float64(len(truth))
	}

	for _, m := range mismatches {
		truthChars := pick(truth, m.Truth)
		predChars := pick(predicted, m.Predicted)
		score, err := clusterSimilarity(truthChars, predChars, w)
		if err != nil {
			return Report{}, err
		}
		report.Corrections = append(report.Corrections, Correction{
			Mismatch:      m,
			TruthText:     strings.Join(truthChars, ""),
			PredictedText: strings.Join(predChars, ""),
			Similarity:    score,
		})
	}
	return report, nil
}

// Suggestions returns the corrections whose prediction sounds like the truth
// at or above threshold, most similar first.
func (r Report) Suggestions(threshold float64) []Correction {
	var out []Correction
	for _, c := range r.Corrections {
		if !c.Dropped() && c.Similarity >= threshold {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})
	return out
}

func pick(chars []string, idx []int) []string {
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = chars[i]
	}
	return out
}

func clusterSimilarity(truth, predicted []string, w phonetic.Weights) (float64, error) {
	if len(truth) == 0 || len(predicted) == 0 {
		return 0, nil
	}
	var total float64
	for _, tc := range truth {
		var best float64
		for _, pc := range predicted {
			score, err := phonetic.Similarity(tc, pc, w)
			if errors.Is(err, phonetic.ErrNoPinyin) {
				continue
			}
			if err != nil {
				return 0, fmt.Errorf("score %q against %q: %w", tc, pc, err)
			}
			best = max(best, score)
		}
		total += best
	}
	return total / float64(len(truth)), nil
}

// Package script turns ground-truth scripts and recognized text into the
// character sequences the alignment engine compares.
//
// Text is normalized to NFC, full-width ASCII is folded to its narrow form,
// and whitespace is dropped so that layout differences between a script and
// a recognizer transcript never count as errors. Punctuation is dropped too
// unless the caller keeps it.
package script

import (
	"fmt"
	"os"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Options tunes normalization.
type Options struct {
	KeepPunctuation bool
}

func (o Options) transformer() transform.Transformer {
	steps := []transform.Transformer{norm.NFC, width.Fold, runes.Remove(runes.In(unicode.White_Space))}
	if !o.KeepPunctuation {
		steps = append(steps, runes.Remove(runes.In(unicode.P)))
	}
	return transform.Chain(steps...)
}

// Normalize returns text after applying opts.
func Normalize(text string, opts Options) (string, error) {
	out, _, err := transform.String(opts.transformer(), text)
	if err != nil {
		return "", fmt.Errorf("normalize text: %w", err)
	}
	return out, nil
}

// Chars normalizes text and splits it into one string per rune.
func Chars(text string, opts Options) ([]string, error) {
	normalized, err := Normalize(text, opts)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(normalized)/3+1)
	for _, r := range normalized {
		out = append(out, string(r))
	}
	return out, nil
}

// ReadFile loads a script file and returns its characters.
func ReadFile(path string, opts Options) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Chars(string(data), opts)
}

// Package phonetic scores how alike two Chinese characters sound by
// comparing their pinyin initial, final and tone.
package phonetic

import (
	"errors"
	"fmt"

	"github.com/mozillazg/go-pinyin"
)

// ErrNoPinyin is returned for input that is not a single Han character.
var ErrNoPinyin = errors.New("no pinyin reading")

// NeutralTone is the tone recorded for syllables without a tone mark.
const NeutralTone = "5"

// PinYin holds the phonetic features of one character.
type PinYin struct {
	Initial string
	Final   string
	Tone    string
}

func (p PinYin) String() string {
	return p.Initial + p.Final + p.Tone
}

// Weights sets how much each feature contributes to a similarity score.
type Weights struct {
	Initial float64
	Final   float64
	Tone    float64
}

// DefaultWeights favours initials and finals equally over tone.
var DefaultWeights = Weights{Initial: 0.4, Final: 0.4, Tone: 0.2}

// Similarity returns the weighted share of features p and other agree on.
func (p PinYin) Similarity(other PinYin, w Weights) float64 {
	var score float64
	if p.Initial == other.Initial {
		score += w.Initial
	}
	if p.Final == other.Final {
		score += w.Final
	}
	if p.Tone == other.Tone {
		score += w.Tone
	}
	return score
}

// Of returns the pinyin features of char, which must be one Han character.
// Heteronyms resolve to their most common reading.
func Of(char string) (PinYin, error) {
	initial, err := reading(char, pinyin.Initials)
	if err != nil {
		return PinYin{}, err
	}
	final, err := reading(char, pinyin.Finals)
	if err != nil {
		return PinYin{}, err
	}
	toned, err := reading(char, pinyin.Tone3)
	if err != nil {
		return PinYin{}, err
	}
	tone := NeutralTone
	if last := toned[len(toned)-1]; last >= '1' && last <= '4' {
		tone = string(last)
	}
	return PinYin{Initial: initial, Final: final, Tone: tone}, nil
}

// Similarity scores the phonetic closeness of two characters in [0, 1] when
// the weights sum to one.
func Similarity(a, b string, w Weights) (float64, error) {
	pa, err := Of(a)
	if err != nil {
		return 0, err
	}
	pb, err := Of(b)
	if err != nil {
		return 0, err
	}
	return pa.Similarity(pb, w), nil
}

func reading(char string, style int) (string, error) {
	if len([]rune(char)) != 1 {
		return "", fmt.Errorf("%w: %q is not a single character", ErrNoPinyin, char)
	}
	args := pinyin.NewArgs()
	args.Style = style
	out := pinyin.LazyPinyin(char, args)
	if len(out) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoPinyin, char)
	}
	if style == pinyin.Tone3 && out[0] == "" {
		return "", fmt.Errorf("%w: %q", ErrNoPinyin, char)
	}
	return out[0], nil
}

package phonetic

import (
	"errors"
	"math"
	"testing"
)

func TestSimilarityMatchesToneDifference(t *testing.T) {
	// 妈 (ma1) and 马 (ma3) share initial and final.
	got, err := Similarity("妈", "马", DefaultWeights)
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	if math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("Similarity(妈, 马) = %v, want 0.8", got)
	}
}

func TestOf(t *testing.T) {
	p, err := Of("妈")
	if err != nil {
		t.Fatalf("Of: %v", err)
	}
	if p.Initial != "m" || p.Final != "a" || p.Tone != "1" {
		t.Fatalf("Of(妈) = %+v", p)
	}
	if p.String() != "ma1" {
		t.Fatalf("String() = %q, want ma1", p.String())
	}
}

func TestIdenticalCharactersScoreFullWeight(t *testing.T) {
	got, err := Similarity("读", "读", DefaultWeights)
	if err != nil {
		t.Fatalf("Similarity: %v", err)
	}
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("Similarity(读, 读) = %v, want 1", got)
	}
}

func TestSimilarityCustomWeights(t *testing.T) {
	a := PinYin{Initial: "s", Final: "u", Tone: "4"}
	b := PinYin{Initial: "s", Final: "ong", Tone: "1"}
	if got := a.Similarity(b, Weights{Initial: 1}); got != 1 {
		t.Fatalf("initial-only weight = %v, want 1", got)
	}
	if got := a.Similarity(b, Weights{Final: 0.5, Tone: 0.5}); got != 0 {
		t.Fatalf("final/tone weight = %v, want 0", got)
	}
}

func TestOfRejectsNonHanInput(t *testing.T) {
	for _, input := range []string{"", "ab", "a", "读书"} {
		if _, err := Of(input); !errors.Is(err, ErrNoPinyin) {
			t.Errorf("Of(%q): expected ErrNoPinyin, got %v", input, err)
		}
	}
}

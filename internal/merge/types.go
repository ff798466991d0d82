package merge

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput reports a malformed timeline, threshold or instruction set.
	ErrInvalidInput = errors.New("invalid merge input")
	// ErrLengthMismatch reports parallel slices that disagree in length.
	ErrLengthMismatch = errors.New("merge length mismatch")
)

// Span is the start and end of one recognized unit in milliseconds.
type Span struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Duration returns End - Start in milliseconds.
func (s Span) Duration() int64 {
	return s.End - s.Start
}

// Gap classifies the transition out of a timeline entry.
type Gap uint8

const (
	// Mergeable means the next entry folds into the current group.
	Mergeable Gap = 0
	// Boundary means a new group starts at the next entry.
	Boundary Gap = 1
)

func (g Gap) String() string {
	switch g {
	case Mergeable:
		return "mergeable"
	case Boundary:
		return "boundary"
	default:
		return fmt.Sprintf("gap(%d)", uint8(g))
	}
}

// Instruction names an inclusive run of entries collapsed into one.
type Instruction struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// Len reports how many original entries the instruction covers.
func (in Instruction) Len() int {
	return in.Last - in.First + 1
}

// ValidateTimeline checks that every span is well formed and that start
// times never decrease.
func ValidateTimeline(timeline []Span) error {
	for i, span := range timeline {
		if span.Start < 0 {
			return fmt.Errorf("%w: entry %d starts before zero (%d)", ErrInvalidInput, i, span.Start)
		}
		if span.Start > span.End {
			return fmt.Errorf("%w: entry %d starts after it ends (%d > %d)", ErrInvalidInput, i, span.Start, span.End)
		}
		if i > 0 && span.Start < timeline[i-1].Start {
			return fmt.Errorf("%w: entry %d starts before entry %d (%d < %d)", ErrInvalidInput, i, i-1, span.Start, timeline[i-1].Start)
		}
	}
	return nil
}

// ValidateInstructions checks that instr partitions [0, n) in order.
func ValidateInstructions(instr []Instruction, n int) error {
	next := 0
	for k, in := range instr {
		if in.First != next {
			return fmt.Errorf("%w: instruction %d starts at %d, want %d", ErrInvalidInput, k, in.First, next)
		}
		if in.Last < in.First {
			return fmt.Errorf("%w: instruction %d ends at %d before it starts at %d", ErrInvalidInput, k, in.Last, in.First)
		}
		next = in.Last + 1
	}
	if next != n {
		return fmt.Errorf("%w: instructions cover %d of %d entries", ErrInvalidInput, next, n)
	}
	return nil
}

package merge

import "fmt"

// ClassifyGaps flags each timeline entry as Mergeable when the silence before
// the next entry is at most threshold milliseconds, Boundary otherwise.
//
// The result has one flag per entry. Flag i describes the transition out of
// entry i, so the final flag is always Boundary. Overlapping entries produce
// a negative gap and are mergeable.
func ClassifyGaps(timeline []Span, threshold int64) ([]Gap, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("%w: negative gap threshold %d", ErrInvalidInput, threshold)
	}
	if err := ValidateTimeline(timeline); err != nil {
		return nil, err
	}

	gaps := make([]Gap, len(timeline))
	for i := range timeline {
		if i == len(timeline)-1 {
			gaps[i] = Boundary
			break
		}
		if timeline[i+1].Start-timeline[i].End <= threshold {
			gaps[i] = Mergeable
		} else {
			gaps[i] = Boundary
		}
	}
	return gaps, nil
}

// GroupInstructions turns a gap vector into merge instructions. A group opens
// at index 0, grows while flags are Mergeable and closes on the first
// Boundary; the next group opens right after. The last group always closes at
// the final index, whatever its flag.
func GroupInstructions(gaps []Gap) []Instruction {
	if len(gaps) == 0 {
		return nil
	}
	instr := make([]Instruction, 0, len(gaps))
	first := 0
	for i, g := range gaps {
		if g == Boundary {
			instr = append(instr, Instruction{First: first, Last: i})
			first = i + 1
		}
	}
	if first < len(gaps) {
		instr = append(instr, Instruction{First: first, Last: len(gaps) - 1})
	}
	return instr
}

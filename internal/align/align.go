package align

// NoMatch marks a ground-truth position without a counterpart in the
// predicted sequence.
const NoMatch = -1

// Align maps every element of truth to the index of its counterpart in
// predicted, or NoMatch. The mapping is the LCS alignment of the two
// sequences: matched indices are strictly increasing and the number of
// matches is maximal. When several alignments are equally long, backtracking
// prefers to leave a ground-truth element unmatched over skipping a predicted
// one, which makes the result deterministic.
//
// The returned slice always has len(truth) entries. Memory and time are
// O(len(truth) * len(predicted)).
func Align[T comparable](truth, predicted []T) []int {
	n, m := len(truth), len(predicted)
	out := make([]int, n)
	if n == 0 {
		return out
	}
	if m == 0 {
		for i := range out {
			out[i] = NoMatch
		}
		return out
	}

	table := newLCSTable(truth, predicted)

	// Walk back from (n, m), filling out from the tail.
	i, j := n, m
	for i > 0 && j > 0 {
		switch {
		case truth[i-1] == predicted[j-1]:
			out[i-1] = j - 1
			i--
			j--
		case table.at(i-1, j) >= table.at(i, j-1):
			out[i-1] = NoMatch
			i--
		default:
			j--
		}
	}
	for ; i > 0; i-- {
		out[i-1] = NoMatch
	}
	return out
}

// lcsTable is the (n+1) x (m+1) dynamic-programming table stored row-major in
// a single slice. Cell (i, j) holds the LCS length of truth[:i] and
// predicted[:j].
type lcsTable struct {
	cells []int32
	width int
}

func newLCSTable[T comparable](truth, predicted []T) lcsTable {
	n, m := len(truth), len(predicted)
	t := lcsTable{
		cells: make([]int32, (n+1)*(m+1)),
		width: m + 1,
	}
	for i := 1; i <= n; i++ {
		row := i * t.width
		prev := row - t.width
		for j := 1; j <= m; j++ {
			if truth[i-1] == predicted[j-1] {
				t.cells[row+j] = t.cells[prev+j-1] + 1
				continue
			}
			up, left := t.cells[prev+j], t.cells[row+j-1]
			t.cells[row+j] = max(up, left)
		}
	}
	return t
}

func (t lcsTable) at(i, j int) int32 {
	return t.cells[i*t.width+j]
}

// Matched counts the entries of an alignment vector that point into the
// predicted sequence.
func Matched(alignment []int) int {
	count := 0
	for _, idx := range alignment {
		if idx != NoMatch {
			count++
		}
	}
	return count
}

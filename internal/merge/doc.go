// Package merge folds short, time-adjacent recognition fragments into
// subtitle lines.
//
// The pipeline is ClassifyGaps (one mergeable/boundary flag per timeline
// entry), GroupInstructions (flags to inclusive index ranges) and finally
// Timeline and Text, which collapse the parallel timeline and text slices
// along those ranges. Merge chains all four. Every function is pure and
// index driven; inputs are validated before any output is produced.
package merge

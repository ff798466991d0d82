// Package align locates recognition errors by aligning a ground-truth
// character sequence against a predicted one.
//
// Align computes the longest-common-subsequence mapping from every
// ground-truth position to a predicted position (or NoMatch). Mismatches then
// folds the unmatched ground-truth runs into clusters, each paired with the
// span of predicted characters that sits between the surrounding matches and
// is the most likely stand-in for the missing text.
//
// Both functions are pure and safe for concurrent use.
package align

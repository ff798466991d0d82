// Package subtitles turns timed transcripts into SubRip files.
//
// Recognized fragments separated by short silences are merged into one
// subtitle line; the gap threshold decides what counts as short. A
// Generator handles single transcripts and whole directories of them, the
// latter under an exclusive lock on the output directory so concurrent runs
// do not interleave their writes.
package subtitles

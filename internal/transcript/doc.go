// Package transcript holds recognizer output: a word sequence with a
// parallel millisecond timeline.
//
// It reads and writes transcript JSON files, decodes the raw result printed
// by the speech-to-text model, and persists transcripts in a SQLite store so
// subtitles can be regenerated with different merge settings without running
// recognition again.
package transcript

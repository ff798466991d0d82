// Package stt runs an external speech-to-text command and turns its JSON
// result into a transcript.
//
// The command is invoked as
//
//	<command> --model <model> [--vad-model <vad>] [--hotword <words>] --batch-size-s <n> <audio>
//
// and must print a JSON list whose first element carries "key", a space
// separated "text" and a per-word "timestamp" array in milliseconds.
package stt

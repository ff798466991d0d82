package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"subalch/internal/merge"
	"subalch/internal/transcript"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// SampleTranscript returns a twelve-word recording whose fragments merge
// into seven lines at a 100 ms gap threshold.
func SampleTranscript(key string) transcript.Transcript {
	return transcript.Transcript{
		Key:   key,
		Words: []string{"哦", "对", "太", "对", "了", "以", "后", "处", "理", "啊", "好", "的"},
		Timeline: []merge.Span{
			{Start: 0, End: 100}, {Start: 300, End: 800}, {Start: 1100, End: 1190},
			{Start: 1200, End: 1230}, {Start: 1250, End: 1300}, {Start: 1700, End: 1735},
			{Start: 1750, End: 1780}, {Start: 1800, End: 1870}, {Start: 1900, End: 1910},
			{Start: 2410, End: 2510}, {Start: 2910, End: 2950}, {Start: 3250, End: 3300},
		},
	}
}

// WriteSampleTranscript stores SampleTranscript(key) as JSON under dir and
// returns the file path.
func WriteSampleTranscript(t testing.TB, dir, key string) string {
	t.Helper()

	path := filepath.Join(dir, key+".json")
	if err := transcript.WriteJSON(path, SampleTranscript(key)); err != nil {
		t.Fatalf("write sample transcript: %v", err)
	}
	return path
}

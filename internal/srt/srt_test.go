package srt

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subalch/internal/merge"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00:00:00,000"},
		{1300, "00:00:01,300"},
		{7_000, "00:00:07,000"},
		{10_500, "00:00:10,500"},
		{3_723_004, "01:02:03,004"},
		{100 * 3_600_000, "100:00:00,000"},
		{-5, "00:00:00,000"},
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.ms); got != tt.want {
			t.Errorf("FormatTimestamp(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp(" 01:02:03.004 ")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	if got != 3_723_004 {
		t.Fatalf("ParseTimestamp = %d, want 3723004", got)
	}
	for _, bad := range []string{"", "00:00:01", "00:61:00,000", "aa:00:00,000", "00:00:00,1000"} {
		if _, err := ParseTimestamp(bad); err == nil {
			t.Errorf("ParseTimestamp(%q): expected error", bad)
		}
	}
}

func TestRenderMatchesSubRipLayout(t *testing.T) {
	cues, err := FromMerged(
		[]merge.Span{{Start: 0, End: 100}, {Start: 1100, End: 1300}},
		[]string{"哦", "太对了"},
	)
	if err != nil {
		t.Fatalf("FromMerged: %v", err)
	}
	var buf bytes.Buffer
	if err := Render(&buf, cues); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "1\n00:00:00,000 --> 00:00:00,100\n哦\n\n2\n00:00:01,100 --> 00:00:01,300\n太对了\n\n"
	if buf.String() != want {
		t.Fatalf("Render =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestFromMergedRejectsLengthMismatch(t *testing.T) {
	if _, err := FromMerged([]merge.Span{{Start: 0, End: 1}}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestWriteFileAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.srt")
	cues := []Cue{
		{Index: 1, Start: 1700, End: 1910, Text: "以后处理"},
		{Index: 2, Start: 2410, End: 2510, Text: "啊"},
	}
	if err := WriteFile(path, cues); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be renamed away, stat err=%v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != 2 || got[0] != cues[0] || got[1] != cues[1] {
		t.Fatalf("ReadFile = %+v, want %+v", got, cues)
	}
	if Text(got) != "以后处理啊" {
		t.Fatalf("Text = %q", Text(got))
	}
}

func TestParseSkipsMalformedBlocks(t *testing.T) {
	content := "\ufeff1\r\n00:00:01,000 --> 00:00:02,000\r\nfirst\r\nline\r\n\r\n" +
		"x\n00:00:03,000 --> 00:00:04,000\nbad index\n\n" +
		"3\nnot a timing line\ntext\n\n" +
		"4\n00:00:05,000 --> 00:00:06,000\nlast\n"
	cues, err := Parse(strings.NewReader(content))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d: %+v", len(cues), cues)
	}
	if cues[0].Text != "first\nline" || cues[1].Index != 4 {
		t.Fatalf("unexpected cues: %+v", cues)
	}
	if Text(cues) != "firstlinelast" {
		t.Fatalf("Text = %q", Text(cues))
	}
}

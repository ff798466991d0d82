package stt_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"subalch/internal/merge"
	"subalch/internal/services"
	"subalch/internal/stt"
	"subalch/internal/testsupport"
)

func writeAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lecture.wav")
	testsupport.WriteFile(t, path, "RIFF")
	return path
}

func TestTranscribeBuildsCommandAndParsesOutput(t *testing.T) {
	audio := writeAudio(t)
	svc := stt.NewCommandTranscriber(stt.Config{
		Command:    "fake-asr",
		Model:      "paraformer-zh",
		VADModel:   "fsmn-vad",
		Hotword:    "魔搭",
		BatchSizeS: 120,
	}, nil)

	var gotName string
	var gotArgs []string
	svc.WithCommandRunner(func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return []byte(`[{"key": "lecture", "text": "哦 对 好", "timestamp": [[0, 100], [300, 800], [900, 950]]}]`), nil
	})

	got, err := svc.Transcribe(context.Background(), audio)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}

	if gotName != "fake-asr" {
		t.Fatalf("command = %q, want fake-asr", gotName)
	}
	wantArgs := []string{
		"--model", "paraformer-zh",
		"--vad-model", "fsmn-vad",
		"--hotword", "魔搭",
		"--batch-size-s", "120",
		audio,
	}
	if !reflect.DeepEqual(gotArgs, wantArgs) {
		t.Fatalf("args = %q, want %q", gotArgs, wantArgs)
	}

	if got.Key != "lecture" {
		t.Fatalf("Key = %q", got.Key)
	}
	if !reflect.DeepEqual(got.Words, []string{"哦", "对", "好"}) {
		t.Fatalf("Words = %q", got.Words)
	}
	wantTimeline := []merge.Span{{Start: 0, End: 100}, {Start: 300, End: 800}, {Start: 900, End: 950}}
	if !reflect.DeepEqual(got.Timeline, wantTimeline) {
		t.Fatalf("Timeline = %v", got.Timeline)
	}
}

func TestTranscribeOmitsOptionalFlagsAndAppliesDefaults(t *testing.T) {
	audio := writeAudio(t)
	svc := stt.NewCommandTranscriber(stt.Config{}, nil)

	var gotName string
	var gotArgs []string
	svc.WithCommandRunner(func(_ context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return []byte(`[{"text": "好", "timestamp": [[0, 10]]}]`), nil
	})

	got, err := svc.Transcribe(context.Background(), audio)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if gotName != stt.DefaultCommand {
		t.Fatalf("command = %q, want %q", gotName, stt.DefaultCommand)
	}
	wantArgs := []string{"--model", stt.DefaultModel, "--batch-size-s", "300", audio}
	if !reflect.DeepEqual(gotArgs, wantArgs) {
		t.Fatalf("args = %q, want %q", gotArgs, wantArgs)
	}
	if got.Key != "lecture" {
		t.Fatalf("Key = %q, want key derived from file name", got.Key)
	}
	if svc.Model() != stt.DefaultModel {
		t.Fatalf("Model = %q", svc.Model())
	}
}

func TestTranscribeErrors(t *testing.T) {
	audio := writeAudio(t)

	tests := []struct {
		name   string
		audio  string
		runner stt.CommandRunner
		want   error
	}{
		{
			name:  "missing audio",
			audio: filepath.Join(t.TempDir(), "absent.wav"),
			want:  services.ErrNotFound,
		},
		{
			name:  "empty path",
			audio: " ",
			want:  services.ErrValidation,
		},
		{
			name:  "command failure",
			audio: audio,
			runner: func(context.Context, string, ...string) ([]byte, error) {
				return nil, errors.New("exit status 1")
			},
			want: services.ErrExternalTool,
		},
		{
			name:  "mismatched output",
			audio: audio,
			runner: func(context.Context, string, ...string) ([]byte, error) {
				return []byte(`[{"text": "哦 对", "timestamp": [[0, 100]]}]`), nil
			},
			want: services.ErrValidation,
		},
		{
			name:  "object output",
			audio: audio,
			runner: func(context.Context, string, ...string) ([]byte, error) {
				return []byte(`{"text": "哦", "timestamp": [[0, 100]]}`), nil
			},
			want: services.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := stt.NewCommandTranscriber(stt.Config{}, nil)
			svc.WithCommandRunner(tt.runner)
			_, err := svc.Transcribe(context.Background(), tt.audio)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestTranscribeTimeout(t *testing.T) {
	audio := writeAudio(t)
	svc := stt.NewCommandTranscriber(stt.Config{Timeout: 10 * time.Millisecond}, nil)
	svc.WithCommandRunner(func(ctx context.Context, _ string, _ ...string) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	_, err := svc.Transcribe(context.Background(), audio)
	if !errors.Is(err, services.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestConfigFrom(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithSTTCommand("/opt/asr/bin/run"))
	cfg.STT.TimeoutSeconds = 90

	got := stt.ConfigFrom(cfg)
	if got.Command != "/opt/asr/bin/run" {
		t.Fatalf("Command = %q", got.Command)
	}
	if got.Timeout != 90*time.Second {
		t.Fatalf("Timeout = %s", got.Timeout)
	}
	if got.Model != cfg.STT.Model || got.BatchSizeS != cfg.STT.BatchSizeS {
		t.Fatalf("unexpected config %+v", got)
	}
}

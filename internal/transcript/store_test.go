package transcript_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"subalch/internal/services"
	"subalch/internal/testsupport"
	"subalch/internal/transcript"
)

func TestStoreSaveLoadList(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	first := testsupport.SampleTranscript("b-clip")
	second := testsupport.SampleTranscript("a-clip")
	second.Words = second.Words[:2]
	second.Timeline = second.Timeline[:2]

	if err := store.Save(ctx, first, "/media/b.wav"); err != nil {
		t.Fatalf("Save first: %v", err)
	}
	if err := store.Save(ctx, second, ""); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	got, err := store.Load(ctx, "b-clip")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, first) {
		t.Fatalf("Load = %+v, want %+v", got, first)
	}

	summaries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].Key != "a-clip" || summaries[0].WordCount != 2 || summaries[0].DurationMS != 800 {
		t.Fatalf("unexpected first summary: %+v", summaries[0])
	}
	if summaries[1].SourcePath != "/media/b.wav" || summaries[1].UpdatedAt.IsZero() {
		t.Fatalf("unexpected second summary: %+v", summaries[1])
	}
}

func TestStoreSaveReplacesExistingKey(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	original := testsupport.SampleTranscript("clip")
	if err := store.Save(ctx, original, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	updated := original
	updated.Words = []string{"好"}
	updated.Timeline = original.Timeline[:1]
	if err := store.Save(ctx, updated, ""); err != nil {
		t.Fatalf("Save updated: %v", err)
	}

	got, err := store.Load(ctx, "clip")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Words) != 1 || got.Words[0] != "好" {
		t.Fatalf("expected replaced words, got %v", got.Words)
	}
}

func TestStoreMissingKey(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if _, err := store.Load(ctx, "missing"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("Load: expected ErrNotFound, got %v", err)
	}
	if err := store.Delete(ctx, "missing"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("Delete: expected ErrNotFound, got %v", err)
	}
}

func TestStoreDeleteAndReopen(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	store, err := transcript.Open(ctx, cfg.Paths.StorePath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Save(ctx, testsupport.SampleTranscript("keep"), ""); err != nil {
		t.Fatalf("Save keep: %v", err)
	}
	if err := store.Save(ctx, testsupport.SampleTranscript("drop"), ""); err != nil {
		t.Fatalf("Save drop: %v", err)
	}
	if err := store.Delete(ctx, "drop"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	summaries, err := reopened.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(summaries) != 1 || summaries[0].Key != "keep" {
		t.Fatalf("unexpected summaries after reopen: %+v", summaries)
	}
}

func TestStoreRejectsInvalidTranscript(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	bad := testsupport.SampleTranscript("bad")
	bad.Words = bad.Words[:3]
	if err := store.Save(context.Background(), bad, ""); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

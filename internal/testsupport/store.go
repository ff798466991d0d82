package testsupport

import (
	"context"
	"testing"

	"subalch/internal/config"
	"subalch/internal/transcript"
)

// MustOpenStore opens a transcript.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *transcript.Store {
	t.Helper()

	store, err := transcript.Open(context.Background(), cfg.Paths.StorePath)
	if err != nil {
		t.Fatalf("transcript.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

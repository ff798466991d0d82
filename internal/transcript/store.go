package transcript

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"subalch/internal/merge"
	"subalch/internal/services"
)

// Store persists transcripts in SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Summary describes a stored transcript without its payload.
type Summary struct {
	Key        string    `json:"key"`
	WordCount  int       `json:"word_count"`
	DurationMS int64     `json:"duration_ms"`
	SourcePath string    `json:"source_path,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Open initializes or connects to the transcript database and applies
// migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure store dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, err)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applyMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save inserts or replaces the transcript stored under t.Key.
func (s *Store) Save(ctx context.Context, t Transcript, sourcePath string) error {
	if err := t.Validate(); err != nil {
		return err
	}
	words, err := json.Marshal(t.Words)
	if err != nil {
		return fmt.Errorf("encode words: %w", err)
	}
	timeline, err := json.Marshal(t.Timeline)
	if err != nil {
		return fmt.Errorf("encode timeline: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO transcripts (key, words, timeline, word_count, duration_ms, source_path, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET
            words = excluded.words,
            timeline = excluded.timeline,
            word_count = excluded.word_count,
            duration_ms = excluded.duration_ms,
            source_path = excluded.source_path,
            updated_at = excluded.updated_at`,
		t.Key, string(words), string(timeline), len(t.Words), t.Duration(), sourcePath, now, now,
	)
	if err != nil {
		return fmt.Errorf("save transcript %s: %w", t.Key, err)
	}
	return nil
}

// Load returns the transcript stored under key. A missing key yields an
// error wrapping services.ErrNotFound.
func (s *Store) Load(ctx context.Context, key string) (Transcript, error) {
	var words, timeline string
	err := s.db.QueryRowContext(ctx, "SELECT words, timeline FROM transcripts WHERE key = ?", key).Scan(&words, &timeline)
	if errors.Is(err, sql.ErrNoRows) {
		return Transcript{}, fmt.Errorf("%w: transcript %q", services.ErrNotFound, key)
	}
	if err != nil {
		return Transcript{}, fmt.Errorf("load transcript %s: %w", key, err)
	}
	t := Transcript{Key: key}
	if err := json.Unmarshal([]byte(words), &t.Words); err != nil {
		return Transcript{}, fmt.Errorf("decode words for %s: %w", key, err)
	}
	var spans []merge.Span
	if err := json.Unmarshal([]byte(timeline), &spans); err != nil {
		return Transcript{}, fmt.Errorf("decode timeline for %s: %w", key, err)
	}
	t.Timeline = spans
	return t, nil
}

// List returns summaries of all stored transcripts ordered by key.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT key, word_count, duration_ms, source_path, updated_at FROM transcripts ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			sum     Summary
			updated string
		)
		if err := rows.Scan(&sum.Key, &sum.WordCount, &sum.DurationMS, &sum.SourcePath, &updated); err != nil {
			return nil, fmt.Errorf("scan transcript row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, updated); err == nil {
			sum.UpdatedAt = ts
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transcripts: %w", err)
	}
	return out, nil
}

// Delete removes the transcript stored under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM transcripts WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("delete transcript %s: %w", key, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: transcript %q", services.ErrNotFound, key)
	}
	return nil
}

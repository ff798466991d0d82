package subtitles

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"

	"subalch/internal/logging"
	"subalch/internal/transcript"
)

// LockFileName is created inside an output directory while it is written.
const LockFileName = ".subalch.lock"

// ErrDirectoryBusy is returned when another process holds the output lock.
var ErrDirectoryBusy = errors.New("output directory is locked by another process")

// GenerateDir converts every *.json transcript in srcDir into an .srt file of
// the same base name in dstDir. Files are processed in name order. A
// transcript that fails validation is logged and skipped; the remaining
// files are still written and the first such error is returned alongside the
// results.
func (g *Generator) GenerateDir(ctx context.Context, srcDir, dstDir string) ([]Result, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("read transcript dir: %w", err)
	}
	var sources []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		sources = append(sources, filepath.Join(srcDir, entry.Name()))
	}
	sort.Strings(sources)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure output dir: %w", err)
	}
	lock := flock.New(filepath.Join(dstDir, LockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDirectoryBusy, dstDir)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			g.logger.Warn("failed to release output lock", logging.Error(err))
		}
	}()

	results := make([]Result, 0, len(sources))
	var firstErr error
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := g.generateFile(src, dstDir)
		if err == nil {
			results = append(results, result)
			continue
		}
		logging.WarnWithContext(g.logger, "transcript skipped", "subtitle_skipped",
			logging.String("source_file", src),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the transcript JSON for mismatched text and timeline lengths"),
			logging.String(logging.FieldImpact, "no subtitle file written for this transcript"),
		)
		if firstErr == nil {
			firstErr = fmt.Errorf("generate %s: %w", filepath.Base(src), err)
		}
	}
	return results, firstErr
}

func (g *Generator) generateFile(src, dstDir string) (Result, error) {
	t, err := transcript.ReadJSON(src)
	if err != nil {
		return Result{}, err
	}
	return g.WriteSRT(filepath.Join(dstDir, transcript.KeyFromPath(src)+".srt"), t)
}

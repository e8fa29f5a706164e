package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nguyentantai21042004/scribe-flow/internal/media"
)

type candidate struct {
	path    string
	modTime time.Time
}

// List scans dir non-recursively, so files under reserved sub-directories
// (transcripts, processed) are never returned. Entries whose stat fails
// mid-scan are skipped; the file may have been moved by another cycle.
func (s *implScanner) List(ctx context.Context, dir string, class media.Class) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	candidates := make([]candidate, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if media.Classify(e.Name()) != class {
			continue
		}

		info, err := e.Info()
		if err != nil {
			s.logger.Debug(ctx, "Skipping %s: %v", e.Name(), err)
			continue
		}

		candidates = append(candidates, candidate{
			path:    filepath.Join(dir, e.Name()),
			modTime: info.ModTime(),
		})
	}

	// Oldest first, so processing is fair across cycles.
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime.Before(candidates[j].modTime)
	})

	paths := make([]string, len(candidates))
	for i, c := range candidates {
		paths[i] = c.path
	}

	return paths, nil
}

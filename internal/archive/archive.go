package archive

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// UniquePath returns path if it is unused, otherwise the first
// "{stem}_{n}{ext}" variant (n = 1, 2, ...) that does not exist yet.
// Not safe against concurrent writers racing between check and move.
func UniquePath(path string) string {
	if _, err := os.Lstat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, ext)
		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// Move relocates src into destDir (created if absent) under a
// collision-free name and returns the final path. On failure the source
// is left in place.
func (a *implArchiver) Move(ctx context.Context, src, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}

	dest := UniquePath(filepath.Join(destDir, filepath.Base(src)))

	a.logger.Debug(ctx, "Archiving: %s -> %s", src, dest)

	if err := os.Rename(src, dest); err != nil {
		// Rename fails across filesystems; fall back to copy+remove.
		if copyErr := copyFile(src, dest); copyErr != nil {
			return "", fmt.Errorf("move %s: %w", src, err)
		}
		if rmErr := os.Remove(src); rmErr != nil {
			a.logger.Warn(ctx, "Archived copy of %s left behind, source not removed: %v", src, rmErr)
			return dest, nil
		}
	}

	return dest, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copy: %w", err)
	}

	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("close destination: %w", err)
	}

	return nil
}

package archive

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/scribe-flow/internal/logger"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestUniquePathUnused(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp3")
	assert.Equal(t, path, UniquePath(path))
}

func TestUniquePathCollisions(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "clip.mp3"))

	got := UniquePath(filepath.Join(dir, "clip.mp3"))
	assert.Equal(t, filepath.Join(dir, "clip_1.mp3"), got)

	// Occupied siblings are skipped too.
	touch(t, filepath.Join(dir, "clip_1.mp3"))
	touch(t, filepath.Join(dir, "clip_2.mp3"))
	got = UniquePath(filepath.Join(dir, "clip.mp3"))
	assert.Equal(t, filepath.Join(dir, "clip_3.mp3"), got)
}

func TestUniquePathNoExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "README"))
	assert.Equal(t, filepath.Join(dir, "README_1"), UniquePath(filepath.Join(dir, "README")))
}

func TestMoveCreatesDestDir(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	src := filepath.Join(dir, "clip.mp3")
	touch(t, src)

	a := New(logger.New("error"))
	dest, err := a.Move(ctx, src, filepath.Join(dir, "processed"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "processed", "clip.mp3"), dest)
	assert.NoFileExists(t, src)
	assert.FileExists(t, dest)
}

func TestMoveAvoidsOverwrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	processed := filepath.Join(dir, "processed")
	require.NoError(t, os.MkdirAll(processed, 0755))

	// An archived clip.mp3 already exists with known content.
	existing := filepath.Join(processed, "clip.mp3")
	require.NoError(t, os.WriteFile(existing, []byte("original"), 0644))

	src := filepath.Join(dir, "clip.mp3")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0644))

	a := New(logger.New("error"))
	dest, err := a.Move(ctx, src, processed)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(processed, "clip_1.mp3"), dest)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "original", string(data), "existing archive entry must be untouched")

	data, err = os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestMoveMissingSource(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	a := New(logger.New("error"))
	_, err := a.Move(ctx, filepath.Join(dir, "gone.mp3"), filepath.Join(dir, "processed"))
	assert.Error(t, err)
}

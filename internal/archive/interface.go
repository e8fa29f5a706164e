package archive

import "context"

// Archiver relocates processed files into an archive directory without
// overwriting anything already there.
type Archiver interface {
	Move(ctx context.Context, src, destDir string) (string, error)
}

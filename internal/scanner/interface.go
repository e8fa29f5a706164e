package scanner

import (
	"context"

	"github.com/nguyentantai21042004/scribe-flow/internal/media"
)

// Scanner lists candidate media files in a watched directory.
type Scanner interface {
	// List returns the immediate files of dir whose extension matches
	// class, oldest modification time first. A missing directory yields
	// an empty result.
	List(ctx context.Context, dir string, class media.Class) ([]string, error)
}

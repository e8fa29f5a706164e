package extractor

import "context"

// Extractor produces an audio file from a video file.
type Extractor interface {
	// Extract writes the audio track of videoPath into outDir, named
	// after the video's base name, and returns the produced path. The
	// source video is never deleted.
	Extract(ctx context.Context, videoPath, outDir string) (string, error)

	// OutputPath returns the path Extract would produce for videoPath,
	// without running anything.
	OutputPath(videoPath, outDir string) string
}

package extractor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nguyentantai21042004/scribe-flow/internal/media"
)

// audioExt is the fixed extension of extracted audio. 16kHz mono PCM WAV
// is the input format whisper models expect.
const audioExt = ".wav"

func (e *implExtractor) OutputPath(videoPath, outDir string) string {
	return filepath.Join(outDir, media.Stem(videoPath)+audioExt)
}

// Extract converts the video's audio stream to 16kHz mono WAV via ffmpeg.
func (e *implExtractor) Extract(ctx context.Context, videoPath, outDir string) (string, error) {
	audioPath := e.OutputPath(videoPath, outDir)

	e.logger.Info(ctx, "Extracting audio: %s -> %s", videoPath, audioPath)

	args := []string{
		"-i", videoPath,
		"-vn", // No video
		"-ar", "16000", // 16kHz sample rate
		"-ac", "1", // Mono
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := e.executor.Execute(ctx, e.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	e.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}

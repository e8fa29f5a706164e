package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/scribe-flow/internal/media"
)

// Transcribe invokes the whisper binary on one audio file.
// -nt suppresses timestamps so stdout is the plain transcript text.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	t.logger.Info(ctx, "Transcribing (%d threads): %s", t.cfg.Whisper.Threads, audioPath)

	args := []string{
		"-m", t.modelPath,
		"-f", audioPath,
		"-nt",
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
	}
	if t.cfg.Whisper.Language != "" {
		// Forced language bypasses whisper's auto-detection.
		args = append(args, "-l", t.cfg.Whisper.Language)
	}
	if t.cfg.Whisper.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Whisper.Prompt)
	}

	out, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...)
	if err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	return strings.TrimSpace(out), nil
}

// Process transcribes audioPath and writes the transcript into the
// transcripts directory, plus a .docx copy when export is enabled.
func (t *implTranscriber) Process(ctx context.Context, audioPath string) (string, error) {
	text, err := t.Transcribe(ctx, audioPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(t.cfg.Paths.Transcripts, 0755); err != nil {
		return "", fmt.Errorf("create transcripts dir: %w", err)
	}

	stem := media.Stem(audioPath)
	txtPath := filepath.Join(t.cfg.Paths.Transcripts, stem+".txt")
	if err := os.WriteFile(txtPath, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}

	if t.cfg.Export.Docx {
		docxPath := filepath.Join(t.cfg.Paths.Transcripts, stem+".docx")
		if err := transcriptToDocx(stem, text, docxPath); err != nil {
			t.logger.Warn(ctx, "Failed to export docx for %s: %v", audioPath, err)
		}
	}

	t.logger.Info(ctx, "Transcript written: %s", txtPath)
	return txtPath, nil
}

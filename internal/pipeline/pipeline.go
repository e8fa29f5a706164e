package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/scribe-flow/internal/media"
)

// RunOnce performs a single pass and terminates regardless of whether
// files were found.
func (p *implPipeline) RunOnce(ctx context.Context) error {
	_, err := p.cycle(ctx)
	return err
}

// Watch repeats passes until ctx is done. A productive pass is followed
// immediately by the next one; an idle pass sleeps the poll interval,
// or less if the directory watcher signals new media.
func (p *implPipeline) Watch(ctx context.Context, wake <-chan struct{}) error {
	interval := time.Duration(p.cfg.Pipeline.PollInterval) * time.Second
	p.logger.Info(ctx, "Watching %s (poll interval %s)", p.cfg.Paths.Watch, interval)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		handled, err := p.cycle(ctx)
		if err != nil {
			p.logger.Error(ctx, "Pass failed: %v", err)
		} else if handled > 0 {
			continue
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		case <-wake:
			timer.Stop()
		}
	}
}

// cycle runs one pass: convert videos, then transcribe audio. It returns
// the number of files whose on-disk state changed, which is what decides
// whether the next pass starts immediately.
func (p *implPipeline) cycle(ctx context.Context) (int, error) {
	handled := 0

	if p.cfg.Pipeline.ConvertVideo {
		n, err := p.convertVideos(ctx)
		handled += n
		if err != nil {
			return handled, err
		}
	}

	n, err := p.transcribeAudio(ctx)
	handled += n
	return handled, err
}

func (p *implPipeline) convertVideos(ctx context.Context) (int, error) {
	videos, err := p.scanner.List(ctx, p.cfg.Paths.Watch, media.ClassVideo)
	if err != nil {
		return 0, err
	}

	handled := 0
	for _, video := range videos {
		if err := ctx.Err(); err != nil {
			return handled, err
		}

		out := p.extractor.OutputPath(video, p.cfg.Paths.Watch)
		if !p.cfg.Pipeline.Overwrite && exists(out) {
			p.logger.Debug(ctx, "Audio already extracted, skipping: %s", video)
			if p.cfg.Pipeline.Archive {
				handled += p.archiveFile(ctx, video)
			}
			continue
		}

		if _, err := p.extractor.Extract(ctx, video, p.cfg.Paths.Watch); err != nil {
			// Left in place for inspection or retry next cycle.
			p.logger.Error(ctx, "Extraction failed for %s: %v", video, err)
			continue
		}
		handled++

		if p.cfg.Pipeline.Archive {
			handled += p.archiveFile(ctx, video)
		}
	}

	return handled, nil
}

func (p *implPipeline) transcribeAudio(ctx context.Context) (int, error) {
	files, err := p.scanner.List(ctx, p.cfg.Paths.Watch, media.ClassAudio)
	if err != nil {
		return 0, err
	}

	handled := 0
	for _, audio := range files {
		if err := ctx.Err(); err != nil {
			return handled, err
		}

		// Without archiving nothing would stop the same file from being
		// transcribed every pass, so an existing transcript counts as done.
		if !p.cfg.Pipeline.Archive && !p.cfg.Pipeline.Overwrite && exists(p.transcriptPath(audio)) {
			p.logger.Debug(ctx, "Transcript already exists, skipping: %s", audio)
			continue
		}

		if _, err := p.transcriber.Process(ctx, audio); err != nil {
			p.logger.Error(ctx, "Transcription failed for %s: %v", audio, err)
		} else {
			handled++
		}

		// Archived whether or not transcription succeeded.
		if p.cfg.Pipeline.Archive {
			handled += p.archiveFile(ctx, audio)
		}
	}

	return handled, nil
}

// archiveFile moves a consumed input to the processed directory. Move
// failures are logged, never fatal; the source stays where it was.
func (p *implPipeline) archiveFile(ctx context.Context, path string) int {
	dest, err := p.archiver.Move(ctx, path, p.cfg.Paths.Processed)
	if err != nil {
		p.logger.Error(ctx, "Failed to archive %s: %v", path, err)
		return 0
	}
	p.logger.Info(ctx, "Archived: %s -> %s", path, dest)
	return 1
}

func (p *implPipeline) transcriptPath(audioPath string) string {
	return filepath.Join(p.cfg.Paths.Transcripts, media.Stem(audioPath)+".txt")
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

package watcher

import (
	"context"
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/scribe-flow/internal/logger"
	"github.com/nguyentantai21042004/scribe-flow/internal/media"
)

type implWatcher struct {
	dir     string
	logger  logger.Logger
	watcher *fsnotify.Watcher
	wake    chan struct{}
}

// Start consumes fsnotify events and signals the wake channel when a
// media file lands in the watched directory. The pipeline still scans on
// its own schedule; this only shortens the idle sleep.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Debug(ctx, "File watcher started on %s", w.dir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&(fsnotify.Create|fsnotify.Rename|fsnotify.Write) == 0 {
				continue
			}
			if media.Classify(event.Name) == media.ClassOther {
				continue
			}
			w.logger.Debug(ctx, "New media detected: %s", event.Name)
			select {
			case w.wake <- struct{}{}:
			default:
				// A wakeup is already pending.
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (w *implWatcher) Wake() <-chan struct{} {
	return w.wake
}

// Stop closes the underlying fsnotify watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

package watcher

import "context"

// Watcher turns file-system events in the watched directory into wakeup
// signals for the polling loop.
type Watcher interface {
	// Start consumes events until ctx is done.
	Start(ctx context.Context) error
	// Wake yields a signal whenever a media file appears. Signals are
	// coalesced; at most one is pending at a time.
	Wake() <-chan struct{}
	Stop() error
}

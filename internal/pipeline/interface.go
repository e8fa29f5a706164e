package pipeline

import "context"

// Pipeline drives the scan/extract/transcribe/archive cycle.
type Pipeline interface {
	// RunOnce performs a single pass over the watched directory.
	RunOnce(ctx context.Context) error

	// Watch repeats passes until ctx is done, sleeping the poll interval
	// after idle passes. A signal on wake cuts the idle sleep short;
	// wake may be nil.
	Watch(ctx context.Context, wake <-chan struct{}) error
}

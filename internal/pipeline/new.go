package pipeline

import (
	"github.com/nguyentantai21042004/scribe-flow/internal/archive"
	"github.com/nguyentantai21042004/scribe-flow/internal/config"
	"github.com/nguyentantai21042004/scribe-flow/internal/extractor"
	"github.com/nguyentantai21042004/scribe-flow/internal/logger"
	"github.com/nguyentantai21042004/scribe-flow/internal/scanner"
	"github.com/nguyentantai21042004/scribe-flow/internal/transcriber"
)

type implPipeline struct {
	cfg         *config.Config
	scanner     scanner.Scanner
	extractor   extractor.Extractor
	transcriber transcriber.Transcriber
	archiver    archive.Archiver
	logger      logger.Logger
}

// New creates a new Pipeline instance
func New(
	cfg *config.Config,
	scan scanner.Scanner,
	extract extractor.Extractor,
	transcribe transcriber.Transcriber,
	arch archive.Archiver,
	log logger.Logger,
) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		scanner:     scan,
		extractor:   extract,
		transcriber: transcribe,
		archiver:    arch,
		logger:      log,
	}
}

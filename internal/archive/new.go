package archive

import (
	"github.com/nguyentantai21042004/scribe-flow/internal/logger"
)

type implArchiver struct {
	logger logger.Logger
}

// New creates a new Archiver instance
func New(log logger.Logger) Archiver {
	return &implArchiver{
		logger: log,
	}
}

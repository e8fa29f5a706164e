package scanner

import (
	"github.com/nguyentantai21042004/scribe-flow/internal/logger"
)

type implScanner struct {
	logger logger.Logger
}

// New creates a new Scanner instance
func New(log logger.Logger) Scanner {
	return &implScanner{
		logger: log,
	}
}

package transcriber

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/scribe-flow/internal/config"
	"github.com/nguyentantai21042004/scribe-flow/internal/logger"
	"github.com/nguyentantai21042004/scribe-flow/pkg/executor"
)

type implTranscriber struct {
	cfg       *config.Config
	executor  executor.Executor
	logger    logger.Logger
	modelPath string
}

// New resolves the whisper model and returns a Transcriber bound to it.
// The model is resolved once here and reused for every transcription.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	modelPath, err := resolveModel(cfg.Whisper.Model, cfg.Whisper.ModelDir)
	if err != nil {
		return nil, err
	}

	return &implTranscriber{
		cfg:       cfg,
		executor:  exec,
		logger:    log,
		modelPath: modelPath,
	}, nil
}

// resolveModel maps a model name (tiny, base, small, ...) to a ggml file
// under modelDir. A value containing a path separator or a .bin suffix is
// taken as a direct file path.
func resolveModel(model, modelDir string) (string, error) {
	path := model
	if !strings.ContainsRune(model, os.PathSeparator) && !strings.HasSuffix(model, ".bin") {
		path = filepath.Join(modelDir, "ggml-"+model+".bin")
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("load model %q: %w", model, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("load model %q: %s is a directory", model, path)
	}

	return path, nil
}

func (t *implTranscriber) ModelPath() string {
	return t.modelPath
}

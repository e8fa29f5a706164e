package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper  WhisperConfig  `yaml:"whisper"`
	FFmpeg   FFmpegConfig   `yaml:"ffmpeg"`
	Paths    PathsConfig    `yaml:"paths"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Logging  LoggingConfig  `yaml:"logging"`
	Summary  SummaryConfig  `yaml:"summary"`
	Export   ExportConfig   `yaml:"export"`
}

type WhisperConfig struct {
	// Model is either a whisper model name (tiny, base, small, medium,
	// large) resolved against ModelDir, or a direct path to a ggml file.
	Model      string `yaml:"model"`
	ModelDir   string `yaml:"model_dir"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type PathsConfig struct {
	Watch       string `yaml:"watch"`
	Transcripts string `yaml:"transcripts"`
	Processed   string `yaml:"processed"`
	Summaries   string `yaml:"summaries"`
}

type PipelineConfig struct {
	PollInterval int  `yaml:"poll_interval"`
	ConvertVideo bool `yaml:"convert_video"`
	Archive      bool `yaml:"archive"`
	Overwrite    bool `yaml:"overwrite"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type SummaryConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type ExportConfig struct {
	Docx bool `yaml:"docx"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns a config carrying every default value, suitable as a
// starting point when no config file is used.
func Default() *Config {
	return &Config{
		Whisper: WhisperConfig{
			Model:      "small",
			ModelDir:   "models",
			BinaryPath: "whisper-cli",
		},
		FFmpeg: FFmpegConfig{
			BinaryPath: "ffmpeg",
		},
		Paths: PathsConfig{
			Watch: ".",
		},
		Pipeline: PipelineConfig{
			PollInterval: 10,
			ConvertVideo: true,
			Archive:      true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Summary: SummaryConfig{
			Model: "gemini-2.5-flash",
		},
	}
}

func (c *Config) Validate() error {
	if c.Whisper.Model == "" {
		return fmt.Errorf("whisper.model is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Paths.Watch == "" {
		return fmt.Errorf("paths.watch is required")
	}
	if c.Pipeline.PollInterval < 0 {
		return fmt.Errorf("pipeline.poll_interval must not be negative")
	}

	if c.Whisper.ModelDir == "" {
		c.Whisper.ModelDir = "models"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Paths.Transcripts == "" {
		c.Paths.Transcripts = filepath.Join(c.Paths.Watch, "transcripts")
	}
	if c.Paths.Processed == "" {
		c.Paths.Processed = filepath.Join(c.Paths.Watch, "processed")
	}
	if c.Paths.Summaries == "" {
		c.Paths.Summaries = filepath.Join(c.Paths.Transcripts, "summaries")
	}
	if c.Pipeline.PollInterval == 0 {
		c.Pipeline.PollInterval = 10
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Summary.Model == "" {
		c.Summary.Model = "gemini-2.5-flash"
	}

	return nil
}

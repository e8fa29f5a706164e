package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					Model:      "small",
					BinaryPath: "whisper-cli",
				},
				Paths: PathsConfig{
					Watch: "data/inbox",
				},
			},
			wantErr: false,
		},
		{
			name: "missing model",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "whisper-cli",
				},
				Paths: PathsConfig{
					Watch: "data/inbox",
				},
			},
			wantErr: true,
		},
		{
			name: "missing watch dir",
			config: Config{
				Whisper: WhisperConfig{
					Model:      "small",
					BinaryPath: "whisper-cli",
				},
			},
			wantErr: true,
		},
		{
			name: "negative poll interval",
			config: Config{
				Whisper: WhisperConfig{
					Model:      "small",
					BinaryPath: "whisper-cli",
				},
				Paths: PathsConfig{
					Watch: "data/inbox",
				},
				Pipeline: PipelineConfig{PollInterval: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{
			Model:      "small",
			BinaryPath: "whisper-cli",
		},
		Paths: PathsConfig{
			Watch: "inbox",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Paths.Transcripts != filepath.Join("inbox", "transcripts") {
		t.Errorf("Transcripts = %v, want inbox/transcripts", cfg.Paths.Transcripts)
	}
	if cfg.Paths.Processed != filepath.Join("inbox", "processed") {
		t.Errorf("Processed = %v, want inbox/processed", cfg.Paths.Processed)
	}
	if cfg.Pipeline.PollInterval != 10 {
		t.Errorf("PollInterval = %v, want 10", cfg.Pipeline.PollInterval)
	}
	if cfg.Whisper.Threads != 4 {
		t.Errorf("Threads = %v, want 4", cfg.Whisper.Threads)
	}
	if cfg.FFmpeg.BinaryPath != "ffmpeg" {
		t.Errorf("FFmpeg binary = %v, want ffmpeg", cfg.FFmpeg.BinaryPath)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  model: "medium"
  binary_path: "/usr/local/bin/whisper-cli"
  language: "en"
  threads: 8

paths:
  watch: "data/inbox"
  processed: "data/done"

pipeline:
  poll_interval: 30
  convert_video: false
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.Model != "medium" {
		t.Errorf("Model = %v, want medium", cfg.Whisper.Model)
	}
	if cfg.Paths.Processed != "data/done" {
		t.Errorf("Processed = %v, want data/done", cfg.Paths.Processed)
	}
	if cfg.Pipeline.PollInterval != 30 {
		t.Errorf("PollInterval = %v, want 30", cfg.Pipeline.PollInterval)
	}
	if cfg.Pipeline.ConvertVideo {
		t.Error("ConvertVideo = true, want false")
	}
	// Unset fields fall back to defaults.
	if cfg.Paths.Transcripts != filepath.Join("data/inbox", "transcripts") {
		t.Errorf("Transcripts = %v, want data/inbox/transcripts", cfg.Paths.Transcripts)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

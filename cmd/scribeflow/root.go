package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/scribe-flow/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "scribeflow",
	Short: "Whisper transcription pipeline",
	Long: `scribeflow watches a directory for media files, converts videos to
audio with ffmpeg, transcribes audio with a whisper.cpp model, and
archives processed inputs.

Every flag falls back to an environment variable (SCRIBE_*), so the tool
can run unattended in a container with no arguments.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", envOr("SCRIBE_LOG_LEVEL", "info"), "log level (debug, info, warn, error)")
}

// loadConfig builds the effective configuration: config file (when given
// or when ./config.yaml exists), overridden by environment variables,
// overridden by explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	fileLoaded := false
	cfg := config.Default()
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		fileLoaded = true
	}

	applyFlags(cmd, cfg, fileLoaded)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags copies flag values into cfg. A flag wins when the user set
// it explicitly, when its backing env var is present, or when no config
// file was loaded (flag defaults are then the only source).
func applyFlags(cmd *cobra.Command, cfg *config.Config, fileLoaded bool) {
	flags := cmd.Flags()

	wins := func(name string, envKeys ...string) bool {
		if flags.Lookup(name) == nil {
			return false
		}
		return !fileLoaded || flags.Changed(name) || envSet(envKeys...)
	}

	if wins("dir", "SCRIBE_DIR") {
		if v, _ := flags.GetString("dir"); v != cfg.Paths.Watch {
			// Derived sub-directories follow the watch dir unless set
			// explicitly below; clear them so Validate re-derives.
			cfg.Paths.Watch = v
			cfg.Paths.Transcripts = ""
			cfg.Paths.Processed = ""
			cfg.Paths.Summaries = ""
		}
	}
	if wins("transcripts-dir", "SCRIBE_TRANSCRIPTS_DIR") {
		if v, _ := flags.GetString("transcripts-dir"); v != "" {
			cfg.Paths.Transcripts = v
		}
	}
	if wins("processed-dir", "SCRIBE_PROCESSED_DIR") {
		if v, _ := flags.GetString("processed-dir"); v != "" {
			cfg.Paths.Processed = v
		}
	}
	if wins("model", "SCRIBE_MODEL", "WHISPER_MODEL") {
		cfg.Whisper.Model, _ = flags.GetString("model")
	}
	if wins("model-dir", "SCRIBE_MODEL_DIR") {
		cfg.Whisper.ModelDir, _ = flags.GetString("model-dir")
	}
	if wins("whisper-bin", "SCRIBE_WHISPER_BIN") {
		cfg.Whisper.BinaryPath, _ = flags.GetString("whisper-bin")
	}
	if wins("ffmpeg-bin", "SCRIBE_FFMPEG_BIN") {
		cfg.FFmpeg.BinaryPath, _ = flags.GetString("ffmpeg-bin")
	}
	if wins("language", "SCRIBE_LANGUAGE") {
		cfg.Whisper.Language, _ = flags.GetString("language")
	}
	if wins("threads", "SCRIBE_THREADS") {
		cfg.Whisper.Threads, _ = flags.GetInt("threads")
	}
	if wins("interval", "SCRIBE_INTERVAL") {
		cfg.Pipeline.PollInterval, _ = flags.GetInt("interval")
	}
	if wins("archive", "SCRIBE_ARCHIVE") {
		cfg.Pipeline.Archive, _ = flags.GetBool("archive")
	}
	if wins("convert-video", "SCRIBE_CONVERT_VIDEO") {
		cfg.Pipeline.ConvertVideo, _ = flags.GetBool("convert-video")
	}
	if wins("overwrite", "SCRIBE_OVERWRITE") {
		cfg.Pipeline.Overwrite, _ = flags.GetBool("overwrite")
	}
	if wins("docx", "SCRIBE_DOCX") {
		cfg.Export.Docx, _ = flags.GetBool("docx")
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" && (!fileLoaded || cmd.Flags().Changed("log-level") || envSet("SCRIBE_LOG_LEVEL")) {
		cfg.Logging.Level = level
	}
}

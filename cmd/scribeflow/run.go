package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/scribe-flow/internal/logger"
	"github.com/nguyentantai21042004/scribe-flow/internal/transcriber"
	"github.com/nguyentantai21042004/scribe-flow/pkg/executor"
)

// Exit codes of single-file mode. Watch mode logs and continues instead.
const (
	exitMissingInput = 2
	exitModelLoad    = 3
	exitTranscribe   = 4
)

var runCmd = &cobra.Command{
	Use:   "run [audio-file]",
	Short: "Transcribe a single audio file and print the transcript",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		audioPath := envOr("SCRIBE_INPUT", "/audio/input.wav")
		if len(args) == 1 {
			audioPath = args[0]
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: invalid configuration: %v\n", err)
			os.Exit(1)
		}
		if info, err := os.Stat(audioPath); err != nil || info.IsDir() {
			fmt.Fprintf(os.Stderr, "ERROR: audio file not found: %s\n", audioPath)
			os.Exit(exitMissingInput)
		}

		log := logger.New(cfg.Logging.Level)
		ctx := cmd.Context()

		log.Info(ctx, "Loading model %q...", cfg.Whisper.Model)
		tr, err := transcriber.New(cfg, executor.New(), log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: failed to load model: %v\n", err)
			os.Exit(exitModelLoad)
		}

		log.Info(ctx, "Transcribing...")
		text, err := tr.Transcribe(ctx, audioPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: transcription failed: %v\n", err)
			os.Exit(exitTranscribe)
		}

		fmt.Printf("\n--- TRANSCRIPT ---\n\n%s\n\n--- END ---\n", text)
	},
}

func init() {
	addWhisperFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

// addWhisperFlags registers the model-related flags shared by run and
// watch, with their environment fallbacks.
func addWhisperFlags(cmd *cobra.Command) {
	cmd.Flags().String("model", envOr("SCRIBE_MODEL", envOr("WHISPER_MODEL", "small")), "whisper model name (tiny, base, small, medium, large) or ggml file path")
	cmd.Flags().String("model-dir", envOr("SCRIBE_MODEL_DIR", "models"), "directory holding ggml model files")
	cmd.Flags().String("whisper-bin", envOr("SCRIBE_WHISPER_BIN", "whisper-cli"), "whisper.cpp binary")
	cmd.Flags().String("language", envOr("SCRIBE_LANGUAGE", ""), "force language code (empty = auto-detect)")
	cmd.Flags().Int("threads", envInt("SCRIBE_THREADS", 4), "whisper threads")
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/scribe-flow/internal/archive"
	"github.com/nguyentantai21042004/scribe-flow/internal/extractor"
	"github.com/nguyentantai21042004/scribe-flow/internal/logger"
	"github.com/nguyentantai21042004/scribe-flow/internal/pipeline"
	"github.com/nguyentantai21042004/scribe-flow/internal/scanner"
	"github.com/nguyentantai21042004/scribe-flow/internal/transcriber"
	"github.com/nguyentantai21042004/scribe-flow/internal/watcher"
	"github.com/nguyentantai21042004/scribe-flow/pkg/executor"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process a directory of media files, once or continuously",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: invalid configuration: %v\n", err)
			os.Exit(1)
		}

		log := logger.New(cfg.Logging.Level)
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		exec := executor.New()

		log.Info(ctx, "Loading model %q...", cfg.Whisper.Model)
		tr, err := transcriber.New(cfg, exec, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: failed to load model: %v\n", err)
			os.Exit(exitModelLoad)
		}
		log.Info(ctx, "Model ready: %s", tr.ModelPath())

		pipe := pipeline.New(cfg, scanner.New(log), extractor.New(cfg, exec, log), tr, archive.New(log), log)

		once, _ := cmd.Flags().GetBool("once")
		if once {
			if err := pipe.RunOnce(ctx); err != nil {
				log.Error(ctx, "Pass failed: %v", err)
				os.Exit(1)
			}
			return
		}

		// Graceful shutdown on SIGINT/SIGTERM.
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			log.Info(ctx, "Shutdown signal received")
			cancel()
		}()

		// fsnotify shortens idle sleeps; plain polling still works
		// without it.
		var wake <-chan struct{}
		if w, err := watcher.New(cfg.Paths.Watch, log); err != nil {
			log.Warn(ctx, "File watcher unavailable, relying on polling: %v", err)
		} else {
			defer w.Stop()
			go func() { _ = w.Start(ctx) }()
			wake = w.Wake()
		}

		if err := pipe.Watch(ctx, wake); err != nil && err != context.Canceled {
			log.Error(ctx, "Watch loop error: %v", err)
			os.Exit(1)
		}
		log.Info(ctx, "Stopped")
	},
}

func init() {
	watchCmd.Flags().String("dir", envOr("SCRIBE_DIR", "."), "directory to watch")
	watchCmd.Flags().String("transcripts-dir", envOr("SCRIBE_TRANSCRIPTS_DIR", ""), "transcript output directory (default <dir>/transcripts)")
	watchCmd.Flags().String("processed-dir", envOr("SCRIBE_PROCESSED_DIR", ""), "archive directory (default <dir>/processed)")
	watchCmd.Flags().String("ffmpeg-bin", envOr("SCRIBE_FFMPEG_BIN", "ffmpeg"), "ffmpeg binary")
	watchCmd.Flags().Bool("once", envBool("SCRIBE_ONCE", false), "run a single pass and exit")
	watchCmd.Flags().Int("interval", envInt("SCRIBE_INTERVAL", 10), "poll interval in seconds between idle passes")
	watchCmd.Flags().Bool("archive", envBool("SCRIBE_ARCHIVE", true), "move processed inputs to the archive directory")
	watchCmd.Flags().Bool("convert-video", envBool("SCRIBE_CONVERT_VIDEO", true), "extract audio from video files")
	watchCmd.Flags().Bool("overwrite", envBool("SCRIBE_OVERWRITE", false), "redo extraction and transcription even if outputs exist")
	watchCmd.Flags().Bool("docx", envBool("SCRIBE_DOCX", false), "export transcripts as .docx alongside .txt")
	addWhisperFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

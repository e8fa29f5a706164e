package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/scribe-flow/internal/logger"
	"github.com/nguyentantai21042004/scribe-flow/internal/summarizer"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Write Gemini markdown summaries for existing transcripts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		keys := cfg.Summary.APIKeys
		if env := os.Getenv("SCRIBE_GEMINI_API_KEYS"); env != "" {
			keys = nil
			for _, k := range strings.Split(env, ",") {
				if k = strings.TrimSpace(k); k != "" {
					keys = append(keys, k)
				}
			}
		}
		if len(keys) == 0 {
			return fmt.Errorf("no Gemini API keys: set summary.api_keys or SCRIBE_GEMINI_API_KEYS")
		}

		log := logger.New(cfg.Logging.Level)
		s := summarizer.New(keys, cfg.Summary.Model, log)
		return s.SummarizeAll(cmd.Context(), cfg.Paths.Transcripts, cfg.Paths.Summaries)
	},
}

func init() {
	summarizeCmd.Flags().String("dir", envOr("SCRIBE_DIR", "."), "watched directory (transcripts default to <dir>/transcripts)")
	summarizeCmd.Flags().String("transcripts-dir", envOr("SCRIBE_TRANSCRIPTS_DIR", ""), "transcript directory to summarize")
	rootCmd.AddCommand(summarizeCmd)
}

package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/scribe-flow/internal/config"
)

func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("log-level", "info", "")
	cmd.Flags().String("dir", ".", "")
	cmd.Flags().Bool("archive", true, "")
	cmd.Flags().Int("interval", 10, "")
	addWhisperFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestApplyFlagsNoConfigFile(t *testing.T) {
	cmd := newTestCmd(t, "--dir", "/media/inbox", "--model", "medium")

	cfg := config.Default()
	applyFlags(cmd, cfg, false)

	assert.Equal(t, "/media/inbox", cfg.Paths.Watch)
	assert.Equal(t, "medium", cfg.Whisper.Model)
	assert.True(t, cfg.Pipeline.Archive)
}

func TestApplyFlagsFileWinsOverDefaults(t *testing.T) {
	cmd := newTestCmd(t)

	cfg := config.Default()
	cfg.Whisper.Model = "large" // from config file
	cfg.Pipeline.PollInterval = 60
	applyFlags(cmd, cfg, true)

	assert.Equal(t, "large", cfg.Whisper.Model, "untouched flag must not override file value")
	assert.Equal(t, 60, cfg.Pipeline.PollInterval)
}

func TestApplyFlagsExplicitFlagWinsOverFile(t *testing.T) {
	cmd := newTestCmd(t, "--model", "tiny", "--interval", "5")

	cfg := config.Default()
	cfg.Whisper.Model = "large"
	cfg.Pipeline.PollInterval = 60
	applyFlags(cmd, cfg, true)

	assert.Equal(t, "tiny", cfg.Whisper.Model)
	assert.Equal(t, 5, cfg.Pipeline.PollInterval)
}

func TestApplyFlagsEnvWinsOverFile(t *testing.T) {
	t.Setenv("WHISPER_MODEL", "base")
	cmd := newTestCmd(t)

	cfg := config.Default()
	cfg.Whisper.Model = "large"
	applyFlags(cmd, cfg, true)

	// The env var backs the flag default, and its presence outranks the
	// config file.
	assert.Equal(t, "base", cfg.Whisper.Model)
}

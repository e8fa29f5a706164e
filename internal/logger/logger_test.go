package logger

import (
	"context"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Level
	}{
		{"debug", "debug", LevelDebug},
		{"info", "info", LevelInfo},
		{"warn", "warn", LevelWarn},
		{"warning alias", "warning", LevelWarn},
		{"error", "error", LevelError},
		{"mixed case", "DEBUG", LevelDebug},
		{"unknown defaults to info", "verbose", LevelInfo},
		{"empty defaults to info", "", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	log := New("info")

	// These should not panic
	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")

	// Test with formatting
	log.Info(ctx, "formatted message: %s %d", "test", 123)
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    Level
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", LevelDebug, true},
		{"info logs at debug level", "debug", LevelInfo, true},
		{"debug doesn't log at info level", "info", LevelDebug, false},
		{"info logs at info level", "info", LevelInfo, true},
		{"warn doesn't log at error level", "error", LevelWarn, false},
		{"error always logs", "debug", LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			result := tt.logLevel >= log.level
			if result != tt.shouldLog {
				t.Errorf("level %v at threshold %q: logged = %v, want %v",
					tt.logLevel, tt.configLevel, result, tt.shouldLog)
			}
		})
	}
}

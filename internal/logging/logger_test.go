package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), "level %q", tt.input)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("warn", &buf)

	Debug("hidden debug")
	Info("hidden info")
	Warn("visible warn", "key", "value")
	Error("visible error")

	out := buf.String()
	assert.NotContains(t, out, "hidden debug")
	assert.NotContains(t, out, "hidden info")
	assert.Contains(t, out, "visible warn")
	assert.Contains(t, out, "key=value")
	assert.Contains(t, out, "visible error")
}

func TestLoggerLazyInit(t *testing.T) {
	logger = nil
	assert.NotNil(t, Logger())
}

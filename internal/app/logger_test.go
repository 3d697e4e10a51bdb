package app

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestSetupLogger(t *testing.T) {
	prev := GetLogger()
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	logger := SetupLogger("warn", &buf)
	assert.Same(t, logger, GetLogger())

	WithModule(logger, "wizard").Info("hidden")
	WithModule(logger, "wizard").Warn("shown", "step", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "module=wizard")
	assert.Contains(t, out, "step=2")
}

func TestSetLoggerIgnoresNil(t *testing.T) {
	prev := GetLogger()
	SetLogger(nil)
	assert.Same(t, prev, GetLogger())
}

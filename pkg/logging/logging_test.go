package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.in))
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Options{Name: "chaos-agent", Version: "test", JSON: true, Level: "info"})

	logger.Info("resolved seed", "seed", 42)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "resolved seed", rec["msg"])
	assert.Equal(t, "chaos-agent", rec["module"])
	assert.Equal(t, "test", rec["version"])
	assert.EqualValues(t, 42, rec["seed"])
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Options{Level: "warn"})

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewLogger_DebugOverridesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Options{Level: "error", Debug: true})

	logger.Debug("catalog lookup")
	assert.Contains(t, buf.String(), "catalog lookup")
}

func TestNewLogger_EnvLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	var buf bytes.Buffer
	logger := NewLogger(&buf, Options{})

	logger.Warn("hidden")
	assert.Empty(t, buf.String())
}

func TestSetDefaultLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	SetDefaultLogger(&buf, Options{Name: "chaos-agent", Version: "test", Debug: true})

	slog.Debug("resolved scenario", "intent", "stall")
	assert.Contains(t, buf.String(), "resolved scenario")
	assert.Contains(t, buf.String(), "module=chaos-agent")
	assert.Contains(t, buf.String(), "intent=stall")
}

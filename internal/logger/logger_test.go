package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNew_JSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", JSON: true, Component: "web"}, &buf)
	require.NoError(t, err)

	logger.Info("rendered", "artifact", "live.yml")
	logger.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rendered", entry["msg"])
	assert.Equal(t, "web", entry["component"])
	assert.Equal(t, "live.yml", entry["artifact"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_WritesRotatingFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var buf bytes.Buffer
	logger, err := New(Config{Level: "debug", Dir: dir}, &buf)
	require.NoError(t, err)

	logger.Debug("to both")

	data, err := os.ReadFile(filepath.Join(dir, LogFilename))
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestInit_InstallsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger, err := Init(Config{Level: "info"}, &buf)
	require.NoError(t, err)

	slog.Info("via default")
	logger.Info("via returned")

	out := buf.String()
	assert.Contains(t, out, "via default")
	assert.Contains(t, out, "via returned")
	assert.NotContains(t, out, "component=")
}

func TestInit_BadLevel(t *testing.T) {
	_, err := Init(Config{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}

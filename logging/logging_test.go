package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New("text", "info", &buf)
	logger.Info("path found", "cost", 5)

	out := buf.String()
	assert.True(t, strings.Contains(out, "path found"), out)
	assert.True(t, strings.Contains(out, "cost=5"), out)
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New("json", "info", &buf)
	logger.Info("node created", "node", "A")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "node created", entry["msg"])
	assert.Equal(t, "A", entry["node"])
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New("text", "warn", &buf)
	logger.Info("hidden")
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"bogus": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_NilWriter(t *testing.T) {
	assert.NotNil(t, New("", "", nil))
}

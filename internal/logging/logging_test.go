package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/displaycard/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestNewJSONWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "info", Format: "auto", Stderr: &buf})
	defer logger.Close()

	logger.Info("page rendered", "session", "s1")
	logger.Debug("hidden")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "page rendered", rec["msg"])
	assert.Equal(t, "s1", rec["session"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewForcedText(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Format: "text", Stderr: &buf}).Info("hello", "k", "v")
	assert.True(t, strings.Contains(buf.String(), "msg=hello"), buf.String())
	assert.Contains(t, buf.String(), "k=v")
}

func TestNewWritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "displaycard.log")
	var buf bytes.Buffer

	logger := New(Options{Format: "text", File: path, MaxSizeMB: 1, Stderr: &buf})
	logger.With("component", "test").Warn("to both sinks")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to both sinks"`)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, buf.String(), "to both sinks")
}

func TestFromConfig(t *testing.T) {
	opts := FromConfig(config.New().Log)
	assert.Equal(t, "info", opts.Level)
	assert.Equal(t, "auto", opts.Format)
	assert.Equal(t, 10, opts.MaxSizeMB)
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

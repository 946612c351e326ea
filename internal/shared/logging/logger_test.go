package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	require.Equal(t, slog.LevelError, ParseLevel(" error "))
	require.Equal(t, slog.LevelInfo, ParseLevel("info"))
	require.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestSlogLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerWithWriter(&buf, slog.LevelInfo, "json")

	logger.Debug("hidden")
	logger.Info("Analysis completed", "total_words", 6)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "Analysis completed", entry["msg"])
	require.Equal(t, float64(6), entry["total_words"])
	require.Equal(t, "INFO", entry["level"])
}

func TestSlogLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerWithWriter(&buf, slog.LevelDebug, "text")

	logger.Debug("Shuffle completed", "groups", 3)
	require.Contains(t, buf.String(), "msg=\"Shuffle completed\"")
	require.Contains(t, buf.String(), "groups=3")
}

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithWriter_LevelFiltering(t *testing.T) {
	tests := []struct {
		level   string
		visible []string
		hidden  []string
	}{
		{LevelDebug, []string{"d", "i", "w", "e"}, nil},
		{LevelInfo, []string{"i", "w", "e"}, []string{"d"}},
		{LevelWarn, []string{"w", "e"}, []string{"d", "i"}},
		{LevelError, []string{"e"}, []string{"d", "i", "w"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLoggerWithWriter(Config{Format: FormatJSON, Level: tt.level}, &buf)

			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			logger.Error("e")

			var msgs []string
			dec := json.NewDecoder(&buf)
			for dec.More() {
				var rec map[string]any
				require.NoError(t, dec.Decode(&rec))
				msgs = append(msgs, rec["msg"].(string))
			}
			assert.Equal(t, tt.visible, msgs)
			for _, h := range tt.hidden {
				assert.NotContains(t, msgs, h)
			}
		})
	}
}

func TestNewLoggerWithWriter_TextWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(Config{Format: FormatText}, &buf)

	logger.With("command", "builds").Info("готово", "count", 3)

	out := buf.String()
	assert.Contains(t, out, "command=builds")
	assert.Contains(t, out, "count=3")
	assert.Contains(t, out, "msg=готово")
}

func TestSlogAdapter_SlogSharesHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithWriter(Config{Format: FormatText, Level: LevelDebug}, &buf)

	logger.Slog().Debug("travis request", "route", "/repo/:slug")

	assert.Contains(t, buf.String(), "route=/repo/:slug")
}

func TestNewSlogAdapter_NilUsesDefault(t *testing.T) {
	adapter := NewSlogAdapter(nil)
	assert.Same(t, slog.Default(), adapter.Slog())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("DEBUG"))
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "travis.log")
	cfg := DefaultConfig()
	cfg.Output = OutputFile
	cfg.FilePath = path

	w := fileWriter(cfg)
	_, err := w.Write([]byte("line\n"))
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestFileWriter_EmptyPathFallsBack(t *testing.T) {
	cfg := Config{Output: OutputFile}
	assert.NotNil(t, fileWriter(cfg))
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("ignored")
	assert.Same(t, logger, logger.With("k", "v"))
	assert.NotNil(t, logger.Slog())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, LevelInfo, cfg.Level)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, OutputStderr, cfg.Output)
	assert.Equal(t, "/var/log/travis.log", cfg.FilePath)
}

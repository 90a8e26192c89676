package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseLevel("loud")
	assert.Error(t, err)
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "qroute.log")
	cfg := Default()
	cfg.File = path
	cfg.Level = "debug"

	l, err := New(cfg)
	require.NoError(t, err)
	l.Debug("pass complete")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"pass complete"`)
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qroute.log")
	l, err := New(Config{Level: "warn", Format: "json", File: path, MaxSizeMB: 1})
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Config{Level: "verbose"})
	assert.Error(t, err)
}

package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithoutFileIsNop(t *testing.T) {
	log, err := New(Options{Debug: true})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.ErrorLevel))
}

func TestNewWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nazarene.log")
	log, err := New(Options{File: path})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("redeemed", zap.String("spawn_id", "galilee_spear_01"))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "redeemed", entry["msg"])
	assert.Equal(t, "galilee_spear_01", entry["spawn_id"])
}

func TestDebugEnablesDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	log, err := New(Options{File: path, Debug: true})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))
}

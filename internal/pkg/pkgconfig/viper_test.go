package pkgconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestViperConfigValues(t *testing.T) {
	path := writeConfigFile(t, "log:\n  level: debug\nbench:\n  pattern: \"*.txt\"\n  buffer_size: 4096\n")

	cfg, err := NewViper(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, cfg.Close())
	}()

	require.Equal(t, "debug", cfg.GetString(KeyLogLevel))
	require.Equal(t, "*.txt", cfg.GetString(KeyBenchPattern))
	require.Equal(t, int64(4096), cfg.GetInt(KeyBenchBufferSize))
}

func TestViperKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfigFile(t, "log:\n  level: error\n")

	cfg, err := NewViper(path)
	require.NoError(t, err)

	require.Equal(t, "error", cfg.GetString(KeyLogLevel))
	require.Equal(t, "*.log", cfg.GetString(KeyBenchPattern))
	require.Equal(t, int64(32*1024), cfg.GetInt(KeyBenchBufferSize))
}

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	require.Equal(t, "warn", cfg.GetString(KeyLogLevel))
	require.Equal(t, "*.log", cfg.GetString(KeyBenchPattern))
	require.Equal(t, int64(32*1024), cfg.GetInt(KeyBenchBufferSize))
}

func TestNewViperMissingFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/drillz/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DRILLZ_DB", "DRILLZ_LOG_LEVEL", "DRILLZ_LOG_FILE", "DRILLZ_SEED", "DRILLZ_TICK"} {
		unsetenv(t, key)
	}

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DB)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, 100*time.Millisecond, cfg.Tick)
}

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DRILLZ_DB", "/tmp/drillz-test.db")
	t.Setenv("DRILLZ_LOG_LEVEL", "DEBUG")
	t.Setenv("DRILLZ_LOG_FILE", "/tmp/drillz-test.log")
	t.Setenv("DRILLZ_SEED", "42")
	t.Setenv("DRILLZ_TICK", "50ms")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/drillz-test.db", cfg.DB)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "/tmp/drillz-test.log", cfg.LogFile)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 50*time.Millisecond, cfg.Tick)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad level", "DRILLZ_LOG_LEVEL", "LOUD"},
		{"bad seed", "DRILLZ_SEED", "-3"},
		{"bad tick", "DRILLZ_TICK", "fast"},
		{"zero tick", "DRILLZ_TICK", "0s"},
		{"slow tick", "DRILLZ_TICK", "5s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	var cfg config.Config
	db, err := cfg.DBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "drillz", "drillz.db"), db)

	logPath, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "drillz", "drillz.log"), logPath)

	cfg.DB = "custom.db"
	cfg.LogFile = "custom.log"
	db, _ = cfg.DBPath()
	logPath, _ = cfg.LogPath()
	assert.Equal(t, "custom.db", db)
	assert.Equal(t, "custom.log", logPath)
}

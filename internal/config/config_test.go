package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PTYHOST_DEBUG", "1")
	t.Setenv("PTYHOST_LOG_LEVEL", "debug")
	t.Setenv("PTYHOST_LISTEN", "unix:///tmp/ptyd.sock")
	t.Setenv("PTYHOST_KILL_ON_CLOSE", "true")
	t.Setenv("PTYHOST_DEFAULT_COLS", "132")
	t.Setenv("PTYHOST_STREAM_POLL", "25ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "unix:///tmp/ptyd.sock", cfg.Listen)
	assert.True(t, cfg.KillOnClose)
	assert.Equal(t, uint16(132), cfg.DefaultCols)
	assert.Equal(t, uint16(24), cfg.DefaultRows)
	assert.Equal(t, 25*time.Millisecond, cfg.StreamPoll)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("PTYHOST_DEFAULT_ROWS", "lots")

	_, err := Load()
	assert.Error(t, err)
	assert.Equal(t, Default(), LoadOrDefault())
}

func TestJournalFile(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cfg := Default()
	path, err := cfg.JournalFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".ptyhost", "journal.db"), path)

	cfg.JournalPath = JournalOff
	path, err = cfg.JournalFile()
	require.NoError(t, err)
	assert.Empty(t, path)

	cfg.JournalPath = "/var/lib/ptyd.db"
	path, err = cfg.JournalFile()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/ptyd.db", path)
}

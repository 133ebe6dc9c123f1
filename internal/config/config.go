// Package config loads runtime configuration from PTYHOST_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name.
const Prefix = "PTYHOST"

// JournalOff disables the session journal when used as JournalPath.
const JournalOff = "off"

// Config holds all configuration.
type Config struct {
	// Debug turns on the diagnostic log of the shared library.
	Debug bool `split_words:"true" default:"false"`

	LogLevel string `split_words:"true" default:"info"`
	LogDev   bool   `split_words:"true" default:"false"`

	Listen      string `split_words:"true" default:"127.0.0.1:50051"`
	MetricsAddr string `split_words:"true"`
	JournalPath string `split_words:"true"`

	// KillOnClose kills a still-running child when its handle is closed.
	// The daemon always does this; for the library it is opt-in.
	KillOnClose bool `split_words:"true" default:"false"`

	DefaultCols uint16        `split_words:"true" default:"80"`
	DefaultRows uint16        `split_words:"true" default:"24"`
	StreamPoll  time.Duration `split_words:"true" default:"10ms"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or returns the
// defaults if the environment is malformed.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LogLevel:    "info",
		Listen:      "127.0.0.1:50051",
		DefaultCols: 80,
		DefaultRows: 24,
		StreamPoll:  10 * time.Millisecond,
	}
}

// JournalFile resolves where the journal database lives. It returns ""
// when the journal is disabled.
func (c *Config) JournalFile() (string, error) {
	switch c.JournalPath {
	case JournalOff:
		return "", nil
	case "":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, ".ptyhost", "journal.db"), nil
	default:
		return c.JournalPath, nil
	}
}

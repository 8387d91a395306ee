// Package config handles the data directory, database path and runtime
// switches.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

const (
	// AppName is the application directory name.
	AppName = "taskpad"

	// DBFile is the task database filename.
	DBFile = "tasks.db"
)

// Config holds configuration paths and settings.
//
// Values come from the environment first (TASKPAD_* variables) and are
// then overridden by command-line flags.
type Config struct {
	// Dir is the data directory path.
	Dir string `env:"TASKPAD_DATA_DIR"`

	// Debug enables diagnostic logging to stderr.
	Debug bool `env:"TASKPAD_DEBUG"`

	// Quiet suppresses informational output.
	Quiet bool `env:"TASKPAD_QUIET"`
}

// New creates a Config from the environment, using dataDir when non-empty.
// An empty dataDir and no TASKPAD_DATA_DIR fall back to the XDG data
// directory.
func New(dataDir string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if dataDir != "" {
		cfg.Dir = dataDir
	}
	if cfg.Dir == "" {
		cfg.Dir = DefaultDataDir()
	}
	return cfg, nil
}

// DefaultDataDir returns the default data directory.
// Uses XDG_DATA_HOME if set, otherwise $HOME/.local/share.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// DBPath returns the path to the task database file.
func (c *Config) DBPath() string {
	return filepath.Join(c.Dir, DBFile)
}

// EnsureDir creates the data directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

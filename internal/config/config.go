// Package config loads drillz settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/abhisek/drillz/internal/store"
)

// Config is the drillz runtime configuration.
type Config struct {
	// DB is the SQLite database path. Empty means the XDG data directory.
	DB       string     `env:"DRILLZ_DB"`
	LogLevel slog.Level `env:"DRILLZ_LOG_LEVEL" envDefault:"INFO"`
	// LogFile is where logs go. The TUI owns the terminal, so logs never
	// go to stderr while a game is running.
	LogFile string `env:"DRILLZ_LOG_FILE"`
	// Seed fixes the random source. Zero seeds from the clock.
	Seed uint64        `env:"DRILLZ_SEED"`
	Tick time.Duration `env:"DRILLZ_TICK" envDefault:"100ms"`
}

// Load reads .env (if present) and then the process environment.
// Variables already set in the environment win over .env entries.
func Load() (*Config, error) {
	// Ignore error so drillz still starts when .env is absent.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the parser cannot.
func (c Config) Validate() error {
	if c.Tick <= 0 {
		return errors.New("DRILLZ_TICK must be positive")
	}
	if c.Tick > time.Second {
		return errors.New("DRILLZ_TICK must be at most 1s")
	}
	return nil
}

// DBPath returns the database path, creating the default data directory
// when no path is configured.
func (c Config) DBPath() (string, error) {
	if c.DB != "" {
		return c.DB, nil
	}
	return store.DefaultDBPath()
}

// LogPath returns the log file path, defaulting to drillz.log in the data
// directory.
func (c Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	dir, err := store.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "drillz.log"), nil
}

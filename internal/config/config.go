// Package config loads application configuration from environment
// variables, with an optional .env file for development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	// ListenAddr is the host:port the HTTP server binds to.
	ListenAddr string `env:"ERFSITE_ADDR" envDefault:":8080"`

	// DBPath is the SQLite database file. Empty selects the in-memory
	// store, which is seeded with demo content and lost on restart.
	DBPath string `env:"ERFSITE_DB_PATH" envDefault:"erfsite.sqlite3"`

	// JWTSecret overrides the stored signing secret. Leave empty to use
	// the auto-generated one persisted in the database.
	JWTSecret string `env:"ERFSITE_JWT_SECRET"`

	LogLevel string `env:"ERFSITE_LOG_LEVEL" envDefault:"info"`
	Env      string `env:"ERFSITE_ENV" envDefault:"development"`

	// SeedDemo loads demo content into an empty store on startup.
	SeedDemo bool `env:"ERFSITE_SEED_DEMO" envDefault:"false"`
}

// IsDevelopment returns true if the application runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// UseMemoryStore returns true if no database file is configured.
func (c Config) UseMemoryStore() bool {
	return c.DBPath == ""
}

// Load reads an optional .env file and parses environment variables.
func Load() (*Config, error) {
	// A missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// internal/config/config.go
//
// Process configuration.
// Values come from the environment, after an optional .env file is loaded.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment.
type Config struct {
	Port           string        `env:"PORT" envDefault:"5175"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	ClientOrigin   string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	MaxLineLength  int           `env:"MAX_LINE_LENGTH" envDefault:"512"`
	ExamplesFile   string        `env:"EXAMPLES_FILE"`
}

// Load reads an optional .env file and then decodes the environment into a Config.
// A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	return ParseEnv()
}

// ParseEnv decodes the current environment into a Config.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxLineLength <= 0 {
		return Config{}, fmt.Errorf("parse env: MAX_LINE_LENGTH must be positive, got %d", cfg.MaxLineLength)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.Port }

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the server settings read from the environment.
type Config struct {
	Port            int           `env:"AGENDA_PORT" envDefault:"8080"`
	BucketCount     int           `env:"AGENDA_BUCKET_COUNT" envDefault:"10"`
	MaxImageBytes   int64         `env:"AGENDA_MAX_IMAGE_BYTES" envDefault:"5242880"`
	LogLevel        string        `env:"AGENDA_LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"AGENDA_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.BucketCount <= 0 {
		return fmt.Errorf("bucket count must be positive, got %d", c.BucketCount)
	}
	if c.MaxImageBytes <= 0 {
		return fmt.Errorf("max image bytes must be positive, got %d", c.MaxImageBytes)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the configured zerolog level.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

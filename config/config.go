// Package config loads the quiz settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the quiz settings.
type Config struct {
	// Seed makes the deck order reproducible. Unset means a fresh
	// cryptographic shuffle every game.
	Seed         *uint64    `env:"RANK_QUIZ_SEED"`
	LogLevel     slog.Level `env:"RANK_QUIZ_LOG_LEVEL" envDefault:"info"`
	VerifyLedger bool       `env:"RANK_QUIZ_VERIFY_LEDGER" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

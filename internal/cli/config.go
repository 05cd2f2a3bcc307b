package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds CLI configuration
type Config struct {
	// Session names the operator session; everything the console remembers
	// between commands (order, selection, drafts) lives under it.
	Session string `env:"CASINODESK_SESSION" envDefault:"default"`

	// Storage selects the session store backend ("memory" or "redis").
	// Memory only persists within one process, so redis is the useful
	// choice for a CLI.
	Storage  string `env:"CASINODESK_STORAGE" envDefault:"redis"`
	RedisURL string `env:"CASINODESK_REDIS_URL" envDefault:"redis://localhost:6379"`

	Output  string `env:"CASINODESK_OUTPUT" envDefault:"text"`
	Verbose bool   `env:"CASINODESK_VERBOSE"`
}

// DefaultConfig returns a Config with values from the environment
func DefaultConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

package gameapi

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds connection settings for the game service API.
//
// Two base URLs exist for the same reason the original console had two: the
// internal URL is reachable from wherever the console itself runs, the public
// URL is what browsers see. The internal one wins when both are set.
type Config struct {
	// InternalAPIURL is the server-side base URL for the game service.
	InternalAPIURL string `env:"CASINODESK_INTERNAL_API_URL"`
	// PublicAPIURL is the client-visible base URL, used as a fallback.
	PublicAPIURL string `env:"CASINODESK_PUBLIC_API_URL"`
	// Timeout bounds each request round-trip.
	Timeout time.Duration `env:"CASINODESK_API_TIMEOUT" envDefault:"30s"`
}

// ConfigFromEnv loads client configuration from environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// BaseURL resolves the effective base URL, preferring the internal one.
// An empty result is a non-fatal configuration condition; callers log it
// and degrade to empty data instead of failing.
func (c Config) BaseURL() string {
	if c.InternalAPIURL != "" {
		return c.InternalAPIURL
	}
	return c.PublicAPIURL
}

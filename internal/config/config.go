// Package config loads strtrace defaults from the environment. Flags
// override whatever is loaded here.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment-tunable defaults.
type Config struct {
	Base    int64 `env:"STRTRACE_BASE" envDefault:"256"`
	Modulus int64 `env:"STRTRACE_MODULUS" envDefault:"101"`
	Threads int   `env:"STRTRACE_THREADS" envDefault:"0"`

	LogLevel  string `env:"STRTRACE_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"STRTRACE_LOG_FORMAT" envDefault:"text"`

	// Tracing is opt-in: nothing is exported unless an endpoint is set.
	OTelEndpoint string `env:"STRTRACE_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"STRTRACE_OTEL_ENABLED" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config read from the current environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"punchclock/internal/logging"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Load a .env file into the environment if one is present
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// Step 1: defaults are already set by NewConfig.

	// Step 2: a missing .env file is not an error.
	if err := godotenv.Load(); err != nil {
		logging.Debugf("config: no .env file loaded: %v\n", err)
	}

	// Step 3: parse PUNCH_* variables over the defaults.
	if err := env.Parse(l.config); err != nil {
		return nil, &ConfigError{Field: "environment", Message: err.Error()}
	}

	// Step 4 happens in the CLI layer; validate what we have so far.
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

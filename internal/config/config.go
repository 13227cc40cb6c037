package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds all configuration options for the punch clock application
type Config struct {
	Storage     StorageConfig
	Display     DisplayConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// StorageConfig holds key-value store configuration
type StorageConfig struct {
	Dir          string        `env:"PUNCH_DATA_DIR"`
	Filename     string        `env:"PUNCH_DB_FILENAME"`
	QueryTimeout time.Duration `env:"PUNCH_DB_QUERY_TIMEOUT"`
	WriteTimeout time.Duration `env:"PUNCH_DB_WRITE_TIMEOUT"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `env:"PUNCH_TIME_FORMAT"`
	DateOnly   bool   `env:"PUNCH_DISPLAY_DATE_ONLY"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	UsernameMinLength int `env:"PUNCH_VALIDATION_USERNAME_MIN"`
	UsernameMaxLength int `env:"PUNCH_VALIDATION_USERNAME_MAX"`
	NoteMaxLength     int `env:"PUNCH_VALIDATION_NOTE_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"PUNCH_APP_TIMEOUT"`
	Verbose bool          `env:"PUNCH_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDataDir := filepath.Join(homeDir, ".punch")

	return &Config{
		Storage: StorageConfig{
			Dir:          defaultDataDir,
			Filename:     "punch.db",
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Display: DisplayConfig{
			TimeFormat: "15:04:05",
			DateOnly:   false,
		},
		Validation: ValidationConfig{
			UsernameMinLength: 1,
			UsernameMaxLength: 64,
			NoteMaxLength:     500,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "data directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "database filename cannot be empty"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}

	if c.Validation.UsernameMinLength < 1 {
		return &ConfigError{Field: "validation.username_min_length", Message: "username minimum length must be at least 1"}
	}
	if c.Validation.UsernameMaxLength < c.Validation.UsernameMinLength {
		return &ConfigError{Field: "validation.username_max_length", Message: "username maximum length must be greater than minimum length"}
	}
	if c.Validation.NoteMaxLength < 0 {
		return &ConfigError{Field: "validation.note_max_length", Message: "note maximum length cannot be negative"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// Package config handles loading and parsing application configuration.
// It supports two sources for the config file path (in priority order):
//  1. An environment variable:  CONTACT_BOOK_CONFIG=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// The file is optional. Without one, every field falls back to its
// CONTACT_BOOK_* environment variable and then to its env-default, so the
// contact book runs out of the box with no setup at all.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigPathEnv names the environment variable that points to a config file.
const ConfigPathEnv = "CONTACT_BOOK_CONFIG"

// Storage drivers understood by the application.
const (
	DriverSQLite = "sqlite"
	DriverYAML   = "yaml"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"CONTACT_BOOK_ENV" env-default:"prod" validate:"oneof=dev staging prod"`

	// LogFile receives the structured logs. Empty means stderr; stdout is
	// reserved for the conversation with the user.
	LogFile string `yaml:"log_file" env:"CONTACT_BOOK_LOG_FILE"`

	// Storage is embedded (not a pointer) so its fields are accessible
	// directly on Config:  cfg.Storage.Path  or after promotion cfg.Path
	Storage `yaml:"storage"`
}

// Storage selects where the address book snapshot lives.
type Storage struct {
	// Driver picks the snapshot format: "sqlite" or "yaml".
	Driver string `yaml:"driver" env:"CONTACT_BOOK_STORAGE_DRIVER" env-default:"sqlite" validate:"oneof=sqlite yaml"`

	// Path is the snapshot file, relative to the working directory.
	Path string `yaml:"path" env:"CONTACT_BOOK_STORAGE_PATH" env-default:"addressbook.pkl" validate:"required"`
}

// Load reads and validates the config. flagPath is the value of the
// --config flag; CONTACT_BOOK_CONFIG takes precedence over it.
func Load(flagPath string) (*Config, error) {
	configPath := os.Getenv(ConfigPathEnv)
	if configPath == "" {
		configPath = flagPath
	}

	var cfg Config
	if configPath == "" {
		// No file: environment and defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config.Load: config file does not exist: %s", configPath)
		}
		// cleanenv.ReadConfig reads the YAML file and populates the struct.
		// It also reads any env:"..." tagged fields from the environment.
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", configPath, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: invalid config: %w", err)
	}

	return &cfg, nil
}

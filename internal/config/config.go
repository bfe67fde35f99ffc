package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the vault tracker
type Config struct {
	Vault       VaultConfig       `yaml:"vault"`
	Time        TimeConfig        `yaml:"time"`
	Validation  ValidationConfig  `yaml:"validation"`
	Log         LogConfig         `yaml:"log"`
	Application ApplicationConfig `yaml:"application"`
}

// VaultConfig locates the tracking database inside the vault
type VaultConfig struct {
	Dir        string `yaml:"dir" env:"VT_VAULT_DIR"`
	DBFilename string `yaml:"db_filename" env:"VT_DB_FILENAME"`
}

// TimeConfig holds time zone and formatting configuration
type TimeConfig struct {
	Timezone      string `yaml:"timezone" env:"VT_TIMEZONE"`
	DisplayFormat string `yaml:"display_format" env:"VT_TIME_DISPLAY_FORMAT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	DescriptionMaxLength int `yaml:"description_max_length" env:"VT_DESCRIPTION_MAX"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level" env:"VT_LOG_LEVEL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"VT_APP_TIMEOUT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Vault: VaultConfig{
			Dir:        ".",
			DBFilename: "time-tracker.db",
		},
		Time: TimeConfig{
			Timezone:      "Local",
			DisplayFormat: "2006-01-02 15:04:05",
		},
		Validation: ValidationConfig{
			DescriptionMaxLength: 255,
		},
		Log: LogConfig{
			Level: "info",
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Vault.Dir, c.Vault.DBFilename)
}

// Location resolves the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Time.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Time.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", c.Time.Timezone, err)
	}
	return loc, nil
}

// LoadFromFile merges the YAML file at path over the current values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("VT_VAULT_DIR"); dir != "" {
		c.Vault.Dir = dir
	}
	if filename := os.Getenv("VT_DB_FILENAME"); filename != "" {
		c.Vault.DBFilename = filename
	}

	if tz := os.Getenv("VT_TIMEZONE"); tz != "" {
		c.Time.Timezone = tz
	}
	if format := os.Getenv("VT_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}

	if maxLen := os.Getenv("VT_DESCRIPTION_MAX"); maxLen != "" {
		n, err := strconv.Atoi(maxLen)
		if err != nil {
			return fmt.Errorf("invalid VT_DESCRIPTION_MAX: %w", err)
		}
		c.Validation.DescriptionMaxLength = n
	}

	if level := os.Getenv("VT_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}

	if timeout := os.Getenv("VT_APP_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid VT_APP_TIMEOUT: %w", err)
		}
		c.Application.Timeout = d
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Vault.Dir == "" {
		return &ConfigError{Field: "vault.dir", Message: "vault directory cannot be empty"}
	}
	if c.Vault.DBFilename == "" {
		return &ConfigError{Field: "vault.db_filename", Message: "database filename cannot be empty"}
	}
	if filepath.IsAbs(c.Vault.DBFilename) {
		return &ConfigError{Field: "vault.db_filename", Message: "database filename must be relative to the vault"}
	}

	if _, err := c.Location(); err != nil {
		return &ConfigError{Field: "time.timezone", Message: err.Error()}
	}
	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}

	if c.Validation.DescriptionMaxLength < 1 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be at least 1"}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "log.level", Message: "log level must be one of debug, info, warn, error"}
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

package config

import (
	"os"
	"time"
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

// load applies the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML file at configPath, or VT_CONFIG_PATH if empty
// 3. Override with environment variables
func (l *Loader) load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = os.Getenv("VT_CONFIG_PATH")
	}
	if configPath != "" {
		if err := l.config.LoadFromFile(configPath); err != nil {
			return nil, err
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides,
// which win over every other source. A nil overrides loads without flags.
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	configPath := ""
	if overrides != nil && overrides.ConfigPath != nil {
		configPath = *overrides.ConfigPath
	}

	config, err := l.load(configPath)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	ConfigPath *string

	VaultDir   *string
	DBFilename *string

	Timezone   *string
	TimeFormat *string

	DescriptionMaxLength *int

	LogLevel *string
	Timeout  *time.Duration
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.VaultDir != nil {
		config.Vault.Dir = *overrides.VaultDir
	}
	if overrides.DBFilename != nil {
		config.Vault.DBFilename = *overrides.DBFilename
	}

	if overrides.Timezone != nil {
		config.Time.Timezone = *overrides.Timezone
	}
	if overrides.TimeFormat != nil {
		config.Time.DisplayFormat = *overrides.TimeFormat
	}

	if overrides.DescriptionMaxLength != nil {
		config.Validation.DescriptionMaxLength = *overrides.DescriptionMaxLength
	}

	if overrides.LogLevel != nil {
		config.Log.Level = *overrides.LogLevel
	}
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
}

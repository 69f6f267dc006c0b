package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fenilsonani/diskscout/internal/scan"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	MinSizeMB  float64           `yaml:"min_size_mb"` // large_files threshold
	AgeDays    int               `yaml:"age_days"`    // old_files window
	Limit      int               `yaml:"limit"`       // report truncation bound
	Extensions []string          `yaml:"extensions"`  // default large_files filter
	Aliases    map[string]string `yaml:"aliases"`     // extra path aliases
	Verbose    bool              `yaml:"verbose"`
}

// GetDefault returns the built-in defaults, matching the engine's
// documented parameter defaults.
func GetDefault() *Config {
	return &Config{
		MinSizeMB: scan.DefaultMinSizeMB,
		AgeDays:   scan.DefaultAgeDays,
		Limit:     scan.DefaultLimit,
	}
}

// Load loads configuration from a file
func Load(configPath string) (*Config, error) {
	// If config doesn't exist, return default config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefault(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := GetDefault()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Save saves configuration to a file
func Save(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.MinSizeMB < 0 {
		return fmt.Errorf("min_size_mb must be >= 0")
	}
	if c.AgeDays < 0 {
		return fmt.Errorf("age_days must be >= 0")
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must be >= 0")
	}

	for alias, target := range c.Aliases {
		if alias == "" || target == "" {
			return fmt.Errorf("aliases must map a name to a non-empty path")
		}
	}

	return nil
}

// ApplyEnv overrides config fields from DISKSCOUT_* environment
// variables. Called after file load so the environment wins; a .env
// file in the working directory is loaded by the CLI before this runs.
func (c *Config) ApplyEnv() error {
	if s := os.Getenv("DISKSCOUT_MIN_SIZE_MB"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("DISKSCOUT_MIN_SIZE_MB: %w", err)
		}
		c.MinSizeMB = v
	}
	if s := os.Getenv("DISKSCOUT_AGE_DAYS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("DISKSCOUT_AGE_DAYS: %w", err)
		}
		c.AgeDays = v
	}
	if s := os.Getenv("DISKSCOUT_LIMIT"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("DISKSCOUT_LIMIT: %w", err)
		}
		c.Limit = v
	}
	return nil
}

// Params converts the config defaults into engine parameters.
func (c *Config) Params() scan.Params {
	return scan.Params{
		MinSizeMB:  c.MinSizeMB,
		Extensions: c.Extensions,
		AgeDays:    c.AgeDays,
		Limit:      c.Limit,
	}
}

// GetConfigPath returns the default config path
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(homeDir, ".config", "diskscout")
	return filepath.Join(configDir, "config.yaml"), nil
}

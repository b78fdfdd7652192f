package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format" yaml:"format"`
	Quiet   bool   `mapstructure:"quiet" yaml:"quiet"`
	Verbose bool   `mapstructure:"verbose" yaml:"verbose"`

	// Log source
	LogDir  string `mapstructure:"log_dir" yaml:"log_dir"`
	LogFile string `mapstructure:"log_file" yaml:"log_file,omitempty"`

	// Analysis defaults
	DefaultPeriod string `mapstructure:"default_period" yaml:"default_period"`
	SignatureFile string `mapstructure:"signature_file" yaml:"signature_file,omitempty"`
}

// Meta records where the configuration came from
type Meta struct {
	ConfigFile string
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:        "json",
		Quiet:         false,
		Verbose:       false,
		LogDir:        "logs",
		DefaultPeriod: "today",
	}
}

// LoadWithMeta loads configuration from files and environment and reports
// the path of the file that was read, if any.
// Config file search order (highest precedence first):
// 1. ./.errlens.yaml or ./.errlens.yml (or errlens.yaml)
// 2. ~/.errlens.yaml or ~/.errlens.yml
// 3. $XDG_CONFIG_HOME/errlens/config.yaml (or ~/.config/errlens/config.yaml)
// 4. /etc/errlens/config.yaml
func LoadWithMeta() (*Config, *Meta, error) {
	cfg := Default()
	meta := &Meta{}

	configFile := findConfigFile()
	if configFile != "" {
		loaded, err := LoadFromFile(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
		meta.ConfigFile = configFile
	}

	// Override with environment variables
	applyEnvOverrides(cfg)

	return cfg, meta, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".errlens.yaml", ".errlens.yml", "errlens.yaml", "errlens.yml"}

	home, homeErr := os.UserHomeDir()
	configDir, configDirErr := os.UserConfigDir()

	var searchPaths []string

	// 1. Current directory
	if cwd, err := os.Getwd(); err == nil {
		searchPaths = append(searchPaths, cwd)
	}

	// 2. Home directory
	if homeErr == nil {
		searchPaths = append(searchPaths, home)
	}

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	// 3. Config directory (e.g., ~/.config/errlens/), then 4. system config.
	// Only these dedicated directories may hold a plain config.yaml.
	var configDirs []string
	if configDirErr == nil {
		configDirs = append(configDirs, filepath.Join(configDir, "errlens"))
	}
	configDirs = append(configDirs, "/etc/errlens")

	for _, dir := range configDirs {
		for _, name := range append([]string{"config.yaml"}, names...) {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ERRLENS_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("ERRLENS_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("ERRLENS_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("ERRLENS_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	// Shared with the backend that writes the log.
	if v := os.Getenv("LOG_DIR"); v != "" {
		cfg.LogDir = v
	}
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}

// Package config loads the settings of the plox command line driver from a
// TOML or YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "PLOX_CONFIG"

// DefaultPaths are searched in order when no path is given
var DefaultPaths = []string{"./plox.toml", "./plox.yaml", "./plox.yml"}

// Config holds the driver settings
type Config struct {
	// Prompt is printed before each REPL line
	Prompt string `toml:"prompt" yaml:"prompt"`
	// Color enables coloured diagnostics
	Color bool `toml:"color" yaml:"color"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `toml:"log_level" yaml:"log_level"`
	// TokenFormat is the output of the tokens command, text or json
	TokenFormat string `toml:"token_format" yaml:"token_format"`
}

// Default returns the settings used when no config file exists
func Default() *Config {
	return &Config{
		Prompt:      "> ",
		Color:       true,
		LogLevel:    "warn",
		TokenFormat: "text",
	}
}

// Load reads the config file at path. The format is chosen by extension and
// fields missing from the file keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by PLOX_CONFIG, or else the first existing
// default path. The defaults are returned when neither exists. The second
// return value is the path that was loaded, empty for defaults.
func LoadFromEnv() (*Config, string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	for _, path := range DefaultPaths {
		if _, err := os.Stat(path); err == nil {
			cfg, err := Load(path)
			return cfg, path, err
		}
	}
	return Default(), "", nil
}

// Validate checks that every enumerated field holds a known value
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	switch c.TokenFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown token_format %q", c.TokenFormat)
	}
	return nil
}

// SlogLevel converts LogLevel for the structured logger
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

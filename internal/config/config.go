package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	appLog "timecalc/internal/log"
)

// EnvPath names the environment variable consulted when no --config flag
// is given.
const EnvPath = "TIMECALC_CONFIG"

// Config holds optional user preferences. Every field has a usable default,
// so running without a config file is the normal case.
type Config struct {
	// Timezone is the IANA name (or a name from the zone table) whose
	// calendar date counts as "today". Empty means the system local zone.
	Timezone string `yaml:"timezone" json:"timezone"`

	// LogLevel is one of "debug", "info" or "error". Logs go to stderr.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Weekdays adds a Monday-Friday count to `remaining`. Off by default.
	Weekdays bool `yaml:"weekdays" json:"weekdays"`

	// ICSSummary is the SUMMARY of events written by `convert --ics`.
	ICSSummary string `yaml:"ics_summary" json:"ics_summary"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timezone:   "",
		LogLevel:   "error",
		Weekdays:   false,
		ICSSummary: "Timezone conversion",
	}
}

// Normalize fills in missing values and resets unknown ones to defaults.
func (c *Config) Normalize() {
	c.Timezone = strings.TrimSpace(c.Timezone)
	if _, err := appLog.ParseLevel(c.LogLevel); err != nil {
		c.LogLevel = "error"
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if strings.TrimSpace(c.ICSSummary) == "" {
		c.ICSSummary = "Timezone conversion"
	}
}

// ResolvePath picks the config path: the explicit flag value, else
// $TIMECALC_CONFIG, else "" (no file).
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvPath)
}

// Load reads YAML from path on top of DefaultConfig, so keys absent from
// the file keep their defaults.
//
// Behavior:
//   - path == "": defaults, no file access
//   - file does not exist: defaults (nothing is created)
//   - file exists but is malformed: error
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			appLog.Debug("config file not found, using defaults", "config_path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()

	appLog.Debug("config loaded", "config_path", path, "timezone", cfg.Timezone, "log_level", cfg.LogLevel)
	return cfg, nil
}

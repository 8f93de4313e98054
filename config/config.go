package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/n3xus/n3xus/internal/util"
	"gopkg.in/yaml.v3"
)

// InputMode selects how the session reads lines from stdin
type InputMode string

const (
	InputAuto InputMode = "auto" // raw on a Windows console, line otherwise
	InputLine InputMode = "line" // cooked, buffered by the terminal
	InputRaw  InputMode = "raw"  // byte at a time with local echo
)

// Log verbosity as exposed to users (CLI and config files), 1 = least chatty
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	DefaultLogLvl    = util.ErrorLevel
	DefaultHost      = "N3XUS"
	DefaultColor     = ColorAuto
	DefaultInputMode = InputAuto
	DefaultBanner    = true
)

// Config contains runtime configuration values for a shell session.
type Config struct {
	LogLvl    util.LogLevel // Internal log level (Default error)
	Prompt    PromptOptions
	InputMode InputMode // (Default auto)
	Banner    bool      // Print the start-up banner (Default true)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
type ConfigOverride struct {
	// LogLvl is the user facing verbosity between 1 (error) and 5 (trace)
	LogLvl    *int       `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	Host      *string    `yaml:"host,omitempty" json:"host,omitempty"`
	Color     *ColorMode `yaml:"color,omitempty" json:"color,omitempty"`
	InputMode *InputMode `yaml:"input_mode,omitempty" json:"input_mode,omitempty"`
	Banner    *bool      `yaml:"banner,omitempty" json:"banner,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl: DefaultLogLvl,
		Prompt: PromptOptions{
			Host:  DefaultHost,
			Color: DefaultColor,
		},
		InputMode: DefaultInputMode,
		Banner:    DefaultBanner,
	}
}

// NewConfig creates a Config from defaults with override applied (nil ok)
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// VerboseToLogLvl maps a user verbosity (clamped to 1..5) to a [util.LogLevel]
func VerboseToLogLvl(verbose int) util.LogLevel {
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return logLvls[util.Clamp(verbose, ErrorVerbose, TraceVerbose)-1]
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerboseToLogLvl(*override.LogLvl)
	}
	if override.Host != nil {
		c.Prompt.Host = *override.Host
	}
	if override.Color != nil {
		c.Prompt.Color = *override.Color
	}
	if override.InputMode != nil {
		c.InputMode = *override.InputMode
	}
	if override.Banner != nil {
		c.Banner = *override.Banner
	}
}

// Validate reports enum fields holding values the session does not know
func (c *Config) Validate() error {
	switch c.Prompt.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Prompt.Color)
	}
	switch c.InputMode {
	case InputAuto, InputLine, InputRaw:
	default:
		return fmt.Errorf("invalid input mode %q (want auto, line or raw)", c.InputMode)
	}
	return nil
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
// The result is validated.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	cfg := NewConfig(override)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

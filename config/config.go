// File: config.go
// Role: YAML configuration: defaults, decoding and struct-tag validation.
// Policy:
//   - Keys missing from a file keep their Default value.
//   - Parse never validates; Load and Validate do.

// Package config loads and validates the graphpoet YAML configuration.
//
// Example file:
//
//	corpus: ./corpus.txt
//	log:
//	  level: info      # debug|info|warn|error
//	  format: console  # console|json
//	output:
//	  highlight: true
//	  color: "212"
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration handling.
var (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: file not found")

	// ErrConfigInvalid indicates the file could not be parsed or failed validation.
	ErrConfigInvalid = errors.New("config: invalid")
)

// Defaults applied by Default and to keys a file leaves out.
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
	DefaultBridgeColor = "212"
)

var validate = validator.New()

// Config is the full command configuration.
type Config struct {
	// Corpus is the path of the corpus text file.
	Corpus string    `yaml:"corpus" validate:"required"`
	Log    LogConfig `yaml:"log"`
	Output Output    `yaml:"output"`
}

// LogConfig selects logger level and encoding.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Output controls how poems are printed.
type Output struct {
	// Highlight styles bridge words when true.
	Highlight bool `yaml:"highlight"`
	// Color is a lipgloss color (ANSI index or #rrggbb) for bridge words.
	Color string `yaml:"color" validate:"required"`
}

// Default returns a configuration with every optional key filled in.
// Corpus is left empty and must be supplied before Validate passes.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Output: Output{
			Color: DefaultBridgeColor,
		},
	}
}

// Parse decodes the YAML file at path over Default without validating.
// Callers that layer further overrides (command-line flags) on top call
// Validate once they are applied.
func Parse(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %q: %w", ErrConfigInvalid, path, err)
	}

	return cfg, nil
}

// Load is Parse followed by Validate.
func Load(path string) (*Config, error) {
	cfg, err := Parse(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags and wraps failures in ErrConfigInvalid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}

	return nil
}

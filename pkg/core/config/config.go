// ============================================================================
// minilang - Tokenizer, Parser and Runner for a tiny language
// ============================================================================
//
// Package:     config
// Description: TOML/YAML configuration for the minilang CLI
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mlerror "github.com/msto63/minilang/foundation/core/error"
	mllog "github.com/msto63/minilang/foundation/core/log"
)

// Environment variables read by the configuration
const (
	EnvConfigPath  = "MINILANG_CONFIG"
	EnvLogLevel    = "MINILANG_LOG_LEVEL"
	EnvSampleInput = "MINILANG_SAMPLE_INPUT"
)

// DefaultSampleInput is run when no source is given
const DefaultSampleInput = "2 + 3 * 4"

// Config holds the complete application configuration
type Config struct {
	General  GeneralConfig  `toml:"general" yaml:"general"`
	Pipeline PipelineConfig `toml:"pipeline" yaml:"pipeline"`
	Output   OutputConfig   `toml:"output" yaml:"output"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
}

// PipelineConfig holds engine settings
type PipelineConfig struct {
	SampleInput string `toml:"sample_input" yaml:"sample_input"`

	// MaxInputLength in bytes; negative disables the limit
	MaxInputLength int      `toml:"max_input_length" yaml:"max_input_length"`
	Timeout        Duration `toml:"timeout" yaml:"timeout"`
}

// OutputConfig holds report rendering settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  bool   `toml:"color" yaml:"color"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{Output: OutputConfig{Color: true}}
	cfg.applyDefaults()
	cfg.applyEnvOverrides()
	return cfg
}

// Load loads configuration from a TOML file, or YAML for .yaml/.yml files
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, mlerror.Newf("config file not found: %s", path).
			WithCode(mlerror.CodeMissingConfig).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, mlerror.Wrap(err, "failed to read config").
			WithCode(mlerror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg := Config{Output: OutputConfig{Color: true}}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		_, err = toml.Decode(string(data), &cfg)
	}
	if err != nil {
		return nil, mlerror.Wrap(err, "failed to parse config").
			WithCode(mlerror.CodeInvalidConfig).
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the MINILANG_CONFIG environment
// variable or the first default location that exists
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, mlerror.New("no config file found, set MINILANG_CONFIG or create configs/config.toml").
			WithCode(mlerror.CodeMissingConfig)
	}

	return Load(path)
}

// DefaultPaths returns the locations searched by LoadFromEnv
func DefaultPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./config.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config/minilang/config.toml"))
	}
	return paths
}

// Validate checks every value that has a closed set of choices
func (c *Config) Validate() error {
	if _, err := mllog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if _, err := mllog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err)
	}

	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return invalid("output.format", c.Output.Format,
			fmt.Errorf("must be one of text, json, yaml"))
	}

	if c.Pipeline.Timeout.Duration < 0 {
		return invalid("pipeline.timeout", c.Pipeline.Timeout.String(),
			fmt.Errorf("must not be negative"))
	}
	return nil
}

func invalid(key, value string, err error) error {
	return mlerror.Wrap(err, "invalid configuration value").
		WithCode(mlerror.CodeInvalidConfig).
		WithDetail("key", key).
		WithDetail("value", value)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "minilang"
	}
	if c.General.Environment == "" {
		c.General.Environment = "development"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Pipeline
	if c.Pipeline.SampleInput == "" {
		c.Pipeline.SampleInput = DefaultSampleInput
	}
	if c.Pipeline.MaxInputLength == 0 {
		c.Pipeline.MaxInputLength = 4096
	}
	if c.Pipeline.Timeout.Duration == 0 {
		c.Pipeline.Timeout.Duration = 5 * time.Second
	}

	// Output
	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
}

// applyEnvOverrides lets the environment override file values
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv(EnvSampleInput); v != "" {
		c.Pipeline.SampleInput = v
	}
}

// ============================================================================
// seqkit - Sequence analysis toolkit
// ============================================================================
//
// Package:     config
// Description: Typed configuration for the seqx command (TOML or YAML)
// Author:      Mike Stoffels
// Created:     2025-02-07
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

	skerror "github.com/msto63/seqkit/foundation/core/error"
	sklog "github.com/msto63/seqkit/foundation/core/log"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "SEQX_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Limits  LimitsConfig  `toml:"limits" yaml:"limits"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
}

// GeneralConfig holds logging and runtime settings
type GeneralConfig struct {
	LogLevel  string   `toml:"log_level" yaml:"log_level"`
	LogFormat string   `toml:"log_format" yaml:"log_format"`
	Timeout   Duration `toml:"timeout" yaml:"timeout"`
}

// LimitsConfig bounds input sizes. Combinations grow as 2^n and
// permutations as n!, so their limits are much lower than the general one.
type LimitsConfig struct {
	MaxInputLength       int `toml:"max_input_length" yaml:"max_input_length"`
	MaxCombinationLength int `toml:"max_combination_length" yaml:"max_combination_length"`
	MaxPermutationLength int `toml:"max_permutation_length" yaml:"max_permutation_length"`
}

// OutputConfig holds result rendering settings
type OutputConfig struct {
	Format  string `toml:"format" yaml:"format"`
	NoColor bool   `toml:"no_color" yaml:"no_color"`
	Pager   bool   `toml:"pager" yaml:"pager"`
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

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. The format follows the
// file extension; anything other than .yaml/.yml is read as TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, skerror.Wrap(err, "config file not found").
				WithCode(skerror.CodeMissingConfig).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, skerror.Wrap(err, "failed to read config").
			WithCode(skerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &cfg)
	default:
		_, err = toml.Decode(string(content), &cfg)
	}
	if err != nil {
		return nil, skerror.Wrap(err, "failed to parse config").
			WithCode(skerror.CodeInvalidConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by SEQX_CONFIG, or the first existing
// default location. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	paths := []string{
		"./configs/seqx.toml",
		"./seqx.toml",
		"./seqx.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "seqx", "seqx.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.General.Timeout.Duration == 0 {
		c.General.Timeout.Duration = 30 * time.Second
	}

	if c.Limits.MaxInputLength == 0 {
		c.Limits.MaxInputLength = 4096
	}
	if c.Limits.MaxCombinationLength == 0 {
		c.Limits.MaxCombinationLength = 20
	}
	if c.Limits.MaxPermutationLength == 0 {
		c.Limits.MaxPermutationLength = 9
	}

	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}, reason string) error {
		return skerror.New(fmt.Sprintf("invalid config value for %s: %s", field, reason)).
			WithCode(skerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("field", field).
			WithDetail("value", value)
	}

	if _, err := sklog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err.Error())
	}
	if _, err := sklog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err.Error())
	}
	if c.General.Timeout.Duration < 0 {
		return invalid("general.timeout", c.General.Timeout.String(), "must not be negative")
	}

	if c.Limits.MaxInputLength < 0 {
		return invalid("limits.max_input_length", c.Limits.MaxInputLength, "must not be negative")
	}
	if c.Limits.MaxCombinationLength < 0 || c.Limits.MaxCombinationLength > 30 {
		return invalid("limits.max_combination_length", c.Limits.MaxCombinationLength, "must be between 1 and 30")
	}
	if c.Limits.MaxPermutationLength < 0 || c.Limits.MaxPermutationLength > 12 {
		return invalid("limits.max_permutation_length", c.Limits.MaxPermutationLength, "must be between 1 and 12")
	}

	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return invalid("output.format", c.Output.Format, "must be text, json or yaml")
	}
	return nil
}

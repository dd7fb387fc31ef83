// SPDX-License-Identifier: MIT

// Package config loads the demo pipeline settings from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBatch    = 8
	DefaultInputs   = 16
	DefaultOutputs  = 18
	DefaultFill     = "zero"
	DefaultMultiply = "accumulate"
	DefaultLogLevel = "info"
)

// Config describes one demo run: input is Batch×Inputs, weights are
// Inputs×Outputs.
type Config struct {
	Batch    uint32       `yaml:"batch"`
	Inputs   uint32       `yaml:"inputs"`
	Outputs  uint32       `yaml:"outputs"`
	Fill     FillConfig   `yaml:"fill"`
	Multiply string       `yaml:"multiply"`
	Output   OutputConfig `yaml:"output"`
	LogLevel string       `yaml:"log_level"`
}

type FillConfig struct {
	Mode string `yaml:"mode"`
	Seed uint64 `yaml:"seed"`
}

type OutputConfig struct {
	Plain bool `yaml:"plain"`
	Plot  bool `yaml:"plot"`
}

func DefaultConfig() *Config {
	return &Config{
		Batch:    DefaultBatch,
		Inputs:   DefaultInputs,
		Outputs:  DefaultOutputs,
		Fill:     FillConfig{Mode: DefaultFill},
		Multiply: DefaultMultiply,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.Fill.Mode {
	case "zero", "sequence", "random":
	default:
		return fmt.Errorf("config: fill mode %q: %w", c.Fill.Mode, ErrUnknownValue)
	}
	switch c.Multiply {
	case "accumulate", "overwrite":
	default:
		return fmt.Errorf("config: multiply %q: %w", c.Multiply, ErrUnknownValue)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("config: log_level %q: %w", c.LogLevel, ErrUnknownValue)
	}

	return lvl, nil
}

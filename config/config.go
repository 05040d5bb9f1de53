// Package config loads and validates the YAML configuration consumed by
// cmd/cssminify, and builds the zap logger the rest of the module logs
// through.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Mnwa/css-minify/transform"
)

// LoggerConfig configures a single logging sink.
type LoggerConfig struct {
	Level       string `yaml:"level" validate:"required,oneof=none debug normal"`
	Destination string `yaml:"destination,omitempty" validate:"omitempty,filepath"`
	Mode        string `yaml:"mode,omitempty" validate:"omitempty,oneof=append overwrite"`
}

// LoggingConfig splits console and file logging, mirroring the teacher's
// separation of the two sinks.
type LoggingConfig struct {
	Console LoggerConfig `yaml:"console"`
	File    LoggerConfig `yaml:"file"`
}

// Config is the top-level configuration file shape for cmd/cssminify.
type Config struct {
	Level   int           `yaml:"level" validate:"min=0,max=3"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the configuration cmd/cssminify uses when no --config
// file is given: level 1, normal console logging, no file logging.
func Default() *Config {
	return &Config{
		Level: int(transform.LevelOne),
		Logging: LoggingConfig{
			Console: LoggerConfig{Level: "normal"},
			File:    LoggerConfig{Level: "none"},
		},
	}
}

var validate = validator.New()

// Load reads and validates the configuration file at path. An empty path
// returns Default().
func Load(path string) (*Config, error) {
	if len(path) == 0 {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Dump marshals cfg back to YAML, for `cssminify dumpconfig`.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return data, nil
}

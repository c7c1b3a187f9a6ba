package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// RunConfig holds the tunable parts of a scheduler run. The task set is
// fixed at build time and is not configurable.
type RunConfig struct {
	Interval   time.Duration `yaml:"interval"`   // Pause between task steps (default 1s)
	Iterations int           `yaml:"iterations"` // Steps to run before exiting; 0 runs forever
	LogLevel   string        `yaml:"log_level"`  // Log level: debug, info, warn, error
	LogFormat  string        `yaml:"log_format"` // Log format: text, json
}

// DefaultRunConfig returns the reference settings.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Interval:  time.Second,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// LoadFile overlays the YAML file at path onto base. Keys missing from
// the file keep their value from base; unknown keys are rejected.
func LoadFile(path string, base RunConfig) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data, base)
}

// Parse overlays YAML data onto base.
func Parse(data []byte, base RunConfig) (RunConfig, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a run.
func (c RunConfig) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", c.Iterations)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}
	return nil
}

/*
PURPOSE:
  Defines the configuration structure and loading logic for w2v-bench.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Configure trainer options, the thread-count sweep and the output table.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Defaults mirror the trainers' usual benchmark settings.
  - CLI flags override file values (see internal/cli/sweep.go).

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default file falls back to defaults; a missing explicit file is an error.
  - Validate() rejects a configuration before any trainer runs.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should be sensible (e.g., repeat 1).

USAGE:
  cfg, err := config.Load("w2v-bench.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/daryltucker/w2v-bench/internal/model"
)

// Config represents the full configuration for w2v-bench.
type Config struct {
	Params model.Params `yaml:"params"`
	Sweep  Sweep        `yaml:"sweep"`
	Plot   Plot         `yaml:"plot"`
}

// Sweep controls the thread-count sweep.
type Sweep struct {
	MinThreads int    `yaml:"min_thread_count"`
	MaxThreads int    `yaml:"max_thread_count"`
	BinaryPath string `yaml:"binary_path"`
	Type       string `yaml:"type"`
	Repeat     int    `yaml:"repeat"`
	Table      string `yaml:"table"`
	// JSONLog is an optional NDJSON file receiving one record per trial.
	JSONLog string `yaml:"json_log"`
	// Gops starts a gops diagnostics agent for the duration of the sweep.
	Gops bool `yaml:"gops"`
}

// Plot controls image rendering. Sizes are in inches.
type Plot struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Params: model.Params{
			Size:     "100",
			Binary:   "1",
			Alpha:    "0.05",
			Window:   "5",
			Sample:   "0.005",
			HS:       "0",
			Negative: "5",
			Iter:     "5",
			MinCount: "5",
		},
		Sweep: Sweep{
			Repeat: 1,
		},
		Plot: Plot{
			Width:  6,
			Height: 4,
		},
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		defaults := []string{"w2v-bench.yaml", "w2v_bench.yaml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the sweep configuration. It must pass before any trainer is started.
func (c *Config) Validate() error {
	var errs []error
	if c.Params.Train == "" {
		errs = append(errs, errors.New("train file is required"))
	}
	if c.Sweep.BinaryPath == "" {
		errs = append(errs, errors.New("binary path is required"))
	}
	if c.Sweep.Table == "" {
		errs = append(errs, errors.New("table path is required"))
	}
	if _, err := model.ParseVariant(c.Sweep.Type); err != nil {
		errs = append(errs, err)
	}
	if c.Sweep.MinThreads < 1 {
		errs = append(errs, fmt.Errorf("min thread count must be >= 1, got %d", c.Sweep.MinThreads))
	}
	if c.Sweep.MaxThreads < c.Sweep.MinThreads {
		errs = append(errs, fmt.Errorf("max thread count %d is below min thread count %d", c.Sweep.MaxThreads, c.Sweep.MinThreads))
	}
	if c.Sweep.Repeat < 1 {
		errs = append(errs, fmt.Errorf("repeat must be >= 1, got %d", c.Sweep.Repeat))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Package config loads the YAML bundle naming which statistical tests to
// run and which argument overrides to apply, following the same
// defaults-then-override-from-file discipline the rest of the toolbox
// uses for its own settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level test-run configuration.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Execution ExecutionConfig `yaml:"execution"`
	Tests     TestsConfig     `yaml:"tests"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ExecutionConfig controls the runner's threading and reporting behavior.
type ExecutionConfig struct {
	MaxThreads int     `yaml:"max_threads"`
	Threshold  float64 `yaml:"threshold"`
}

// TestsConfig selects which tests run and overrides their arguments.
type TestsConfig struct {
	// Include, if non-empty, restricts the run to these test names
	// (see pkg/kernels.TestKind.String for the canonical names). An
	// empty list means "run all fifteen".
	Include []string `yaml:"include"`

	FrequencyBlock         *FrequencyBlockOverride         `yaml:"frequency_block,omitempty"`
	NonOverlappingTemplate *NonOverlappingTemplateOverride `yaml:"non_overlapping_template,omitempty"`
	OverlappingTemplate    *OverlappingTemplateOverride    `yaml:"overlapping_template,omitempty"`
	LinearComplexity       *LinearComplexityOverride       `yaml:"linear_complexity,omitempty"`
	Serial                 *SerialOverride                 `yaml:"serial,omitempty"`
	ApproximateEntropy     *ApproximateEntropyOverride     `yaml:"approximate_entropy,omitempty"`
}

type FrequencyBlockOverride struct {
	M int `yaml:"m"`
}

type NonOverlappingTemplateOverride struct {
	M int `yaml:"m"`
	N int `yaml:"n"`
}

type OverlappingTemplateOverride struct {
	M      int  `yaml:"m"`
	BlockM int  `yaml:"block_m"`
	K      int  `yaml:"k"`
	Legacy bool `yaml:"legacy"`
}

type LinearComplexityOverride struct {
	M int `yaml:"m"`
}

type SerialOverride struct {
	M int `yaml:"m"`
}

type ApproximateEntropyOverride struct {
	M int `yaml:"m"`
}

// DefaultConfig returns a configuration that runs all fifteen tests with
// their documented defaults, an auto-sized thread pool, and the
// conventional 0.01 significance threshold.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Execution: ExecutionConfig{
			MaxThreads: 0,
			Threshold:  0.01,
		},
		Tests: TestsConfig{},
	}
}

// Load reads a YAML configuration file, overlaying it onto the defaults.
// Environment variables referenced as $VAR or ${VAR} in the file are
// expanded before parsing. A missing path is not an error: the defaults
// are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(expanded, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: failed to marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Execution.Threshold <= 0 || c.Execution.Threshold >= 1 {
		return fmt.Errorf("config: execution.threshold must be in (0,1), got %v", c.Execution.Threshold)
	}
	if c.Execution.MaxThreads < 0 {
		return fmt.Errorf("config: execution.max_threads must be >= 0 (0 means auto), got %d", c.Execution.MaxThreads)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

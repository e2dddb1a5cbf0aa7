// Package config loads, validates and saves lvreach configuration.
package config

import "time"

// Config is the root configuration for lvreach.
type Config struct {
	Solver  SolverConfig  `mapstructure:"solver" yaml:"solver" validate:"required"`
	Runner  RunnerConfig  `mapstructure:"runner" yaml:"runner" validate:"required"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Tracing TracingConfig `mapstructure:"tracing" yaml:"tracing"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
}

// SolverConfig contains the search knobs applied to every line.
type SolverConfig struct {
	Strategy     string        `mapstructure:"strategy" yaml:"strategy" validate:"oneof=auto mask dfs bisection"`
	MaxPresses   int           `mapstructure:"max_presses" yaml:"max_presses" validate:"min=1,max=100000"`
	StepBudget   int           `mapstructure:"step_budget" yaml:"step_budget" validate:"min=0"`
	StrictParity bool          `mapstructure:"strict_parity" yaml:"strict_parity"`
	Timeout      time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"min=0s"`
}

// RunnerConfig contains the driver loop settings.
type RunnerConfig struct {
	Workers  int    `mapstructure:"workers" yaml:"workers" validate:"min=1,max=256"`
	Parts    string `mapstructure:"parts" yaml:"parts" validate:"oneof=both indicator target"`
	FailFast bool   `mapstructure:"fail_fast" yaml:"fail_fast"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

// TracingConfig contains tracing configuration.
type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled" yaml:"enabled"`
	ServiceName string  `mapstructure:"service_name" yaml:"service_name" validate:"required_if=Enabled true"`
	Endpoint    string  `mapstructure:"endpoint" yaml:"endpoint" validate:"required_if=Enabled true"`
	Insecure    bool    `mapstructure:"insecure" yaml:"insecure"`
	SampleRate  float64 `mapstructure:"sample_rate" yaml:"sample_rate" validate:"min=0,max=1"`
}

// OutputConfig controls how reports are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
	Color  bool   `mapstructure:"color" yaml:"color"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Strategy:   "auto",
			MaxPresses: 384,
			StepBudget: 0,
			Timeout:    0,
		},
		Runner: RunnerConfig{
			Workers: 4,
			Parts:   "both",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "lvreach",
			Endpoint:    "localhost:4317",
			Insecure:    true,
			SampleRate:  1.0,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

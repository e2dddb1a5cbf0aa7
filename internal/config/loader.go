package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. LVREACH_RUNNER_WORKERS.
const EnvPrefix = "LVREACH"

// ConfigLoader handles loading configuration from files and environment.
type ConfigLoader interface {
	Load(path string) (*Config, error)
	LoadWithDefaults(path string) (*Config, error)
}

// viperConfigLoader implements ConfigLoader using Viper.
type viperConfigLoader struct {
	validator ConfigValidator
}

// NewConfigLoader creates a new ConfigLoader instance.
func NewConfigLoader(validator ConfigValidator) ConfigLoader {
	return &viperConfigLoader{
		validator: validator,
	}
}

// Load reads the YAML file at path over the defaults, then applies
// LVREACH_* environment overrides. The file must exist.
func (l *viperConfigLoader) Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return l.decode(v)
}

// LoadWithDefaults behaves like Load, but a missing file (or an empty path)
// yields the defaults with environment overrides applied.
func (l *viperConfigLoader) LoadWithDefaults(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return l.Load(path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	return l.decode(newViper())
}

func (l *viperConfigLoader) decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := l.validator.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// newViper returns a Viper seeded with DefaultConfig and bound to the
// environment. Defaults must be registered for AutomaticEnv to see a key.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault("solver.strategy", d.Solver.Strategy)
	v.SetDefault("solver.max_presses", d.Solver.MaxPresses)
	v.SetDefault("solver.step_budget", d.Solver.StepBudget)
	v.SetDefault("solver.strict_parity", d.Solver.StrictParity)
	v.SetDefault("solver.timeout", d.Solver.Timeout)
	v.SetDefault("runner.workers", d.Runner.Workers)
	v.SetDefault("runner.parts", d.Runner.Parts)
	v.SetDefault("runner.fail_fast", d.Runner.FailFast)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
	v.SetDefault("tracing.endpoint", d.Tracing.Endpoint)
	v.SetDefault("tracing.insecure", d.Tracing.Insecure)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", d.Output.Color)

	return v
}

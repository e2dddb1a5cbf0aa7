package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvreach.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "auto", cfg.Solver.Strategy)
	assert.Equal(t, 384, cfg.Solver.MaxPresses)
	assert.Zero(t, cfg.Solver.StepBudget)
	assert.False(t, cfg.Solver.StrictParity)
	assert.Equal(t, 4, cfg.Runner.Workers)
	assert.Equal(t, "both", cfg.Runner.Parts)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "localhost:4317", cfg.Tracing.Endpoint)
	assert.Equal(t, 1.0, cfg.Tracing.SampleRate)
	assert.Equal(t, "text", cfg.Output.Format)

	assert.NoError(t, NewValidator().Validate(cfg))
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
solver:
  strategy: dfs
  max_presses: 100
  step_budget: 5000
  timeout: 2s
runner:
  workers: 2
  parts: target
logging:
  level: debug
  format: json
`)

	cfg, err := NewConfigLoader(NewValidator()).Load(path)
	require.NoError(t, err)

	want := DefaultConfig()
	want.Solver.Strategy = "dfs"
	want.Solver.MaxPresses = 100
	want.Solver.StepBudget = 5000
	want.Solver.Timeout = 2 * time.Second
	want.Runner.Workers = 2
	want.Runner.Parts = "target"
	want.Logging.Level = "debug"
	want.Logging.Format = "json"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewConfigLoader(NewValidator())

	_, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	cfg, err := loader.LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(DefaultConfig(), cfg))

	cfg, err = loader.LoadWithDefaults("")
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Solver.Strategy)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LVREACH_RUNNER_WORKERS", "8")
	t.Setenv("LVREACH_SOLVER_STRATEGY", "bisection")

	cfg, err := NewConfigLoader(NewValidator()).LoadWithDefaults("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Runner.Workers)
	assert.Equal(t, "bisection", cfg.Solver.Strategy)

	path := writeConfig(t, "runner:\n  workers: 2\n")
	cfg, err = NewConfigLoader(NewValidator()).Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Runner.Workers, "environment wins over the file")
}

func TestLoadInvalidConfig(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"strategy", "solver:\n  strategy: annealing\n", "solver.strategy must be one of"},
		{"workers", "runner:\n  workers: 0\n", "runner.workers must be at least 1"},
		{"max presses", "solver:\n  max_presses: 200000\n", "solver.max_presses must be at most 100000"},
		{"format", "logging:\n  format: xml\n", "logging.format must be one of"},
		{"budget", "solver:\n  step_budget: 10\n", "solver.step_budget must be 0 or at least"},
		{"service", "tracing:\n  enabled: true\n  service_name: \"\"\n", "tracing.service_name is required"},
		{"sample rate", "tracing:\n  sample_rate: 1.5\n", "tracing.sample_rate must be at most 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfigLoader(NewValidator()).Load(writeConfig(t, tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidateNil(t *testing.T) {
	assert.Error(t, NewValidator().Validate(nil))
}

func TestSaveThenLoad(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Solver.StrictParity = true
	cfg.Runner.FailFast = true
	cfg.Output.Format = "json"
	path := filepath.Join(t.TempDir(), "nested", "lvreach.yaml")

	require.NoError(t, Save(cfg, path))
	got, err := NewConfigLoader(NewValidator()).Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	_, err = Marshal(nil)
	assert.Error(t, err)
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Solver.StepBudget = 10
	cfg.Runner.Parts = "neither"

	err := NewValidator().Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solver.step_budget must be 0 or at least solver.max_presses (got: 10)")
	assert.Contains(t, err.Error(), "runner.parts must be one of [both indicator target] (got: neither)")
}

package runner

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvreach/solver"
)

// Part selects which presses a run computes for every line.
type Part int

const (
	// PartBoth solves the indicator and the target.
	PartBoth Part = iota
	// PartIndicator solves only the indicator parity with the mask solver.
	PartIndicator
	// PartTarget solves only the target counts.
	PartTarget
)

var partNames = [...]string{
	PartBoth:      "both",
	PartIndicator: "indicator",
	PartTarget:    "target",
}

// String returns the config name of p.
func (p Part) String() string {
	if p < 0 || int(p) >= len(partNames) {
		return fmt.Sprintf("Part(%d)", int(p))
	}

	return partNames[p]
}

// ParsePart maps a config name to a Part.
func ParsePart(name string) (Part, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range partNames {
		if n == name {
			return Part(i), nil
		}
	}

	return PartBoth, fmt.Errorf("unknown part %q", name)
}

func (p Part) indicator() bool { return p == PartBoth || p == PartIndicator }
func (p Part) target() bool    { return p == PartBoth || p == PartTarget }

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger for per-line records.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTracer sets the OpenTelemetry tracer.
func WithTracer(tracer trace.Tracer) RunnerOption {
	return func(r *Runner) {
		if tracer != nil {
			r.tracer = tracer
		}
	}
}

// WithWorkers bounds the number of lines solved concurrently. n < 1 is ignored.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) {
		if n >= 1 {
			r.workers = n
		}
	}
}

// WithStrategy selects the target strategy.
func WithStrategy(s solver.Strategy) RunnerOption {
	return func(r *Runner) {
		r.strategy = s
	}
}

// WithPart selects which presses are computed.
func WithPart(p Part) RunnerOption {
	return func(r *Runner) {
		r.part = p
	}
}

// WithLineTimeout bounds the solve time of each line; 0 disables it.
func WithLineTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d >= 0 {
			r.lineTimeout = d
		}
	}
}

// WithFailFast aborts the run on the first failing line.
func WithFailFast(enabled bool) RunnerOption {
	return func(r *Runner) {
		r.failFast = enabled
	}
}

// WithSolverOptions appends options passed to every solve.
func WithSolverOptions(opts ...solver.Option) RunnerOption {
	return func(r *Runner) {
		r.solverOpts = append(r.solverOpts, opts...)
	}
}

package solver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvreach/vector"
)

// DefaultMaxPresses caps DFS recursion depth when WithMaxPresses is not given.
const DefaultMaxPresses = 384

var (
	// ErrScenarioNil is returned when a nil *scenario.Scenario is passed.
	ErrScenarioNil = errors.New("solver: scenario is nil")

	// ErrSolutionNil is returned when a nil *scenario.Solution is passed.
	ErrSolutionNil = errors.New("solver: solution is nil")

	// ErrNoSolution is the expected miss: the search space was exhausted.
	ErrNoSolution = errors.New("solver: no solution")

	// ErrInsufficientCapacity indicates a scratch buffer too small for the scenario.
	ErrInsufficientCapacity = errors.New("solver: insufficient capacity")

	// ErrButtonNotFound indicates a button index outside the scenario.
	ErrButtonNotFound = errors.New("solver: button not found")

	// ErrParityGap is returned in strict mode when bisection cannot correct
	// the parity of an intermediate destination.
	ErrParityGap = errors.New("solver: parity gap")

	// ErrStepBudget indicates that the configured step budget was exhausted.
	ErrStepBudget = errors.New("solver: step budget exhausted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Option configures solver behavior via functional arguments.
type Option func(*Options)

// Options holds the knobs shared by every solver entry point.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked sparsely at the top of
	// the search loops.
	Ctx context.Context

	// MaxPresses caps the DFS recursion depth. A branch deeper than this is
	// treated as a miss.
	MaxPresses int

	// StepBudget, if > 0, bounds the number of search steps (tentative
	// presses, mask subsets and bisection levels) of one entry-point call.
	StepBudget int

	// Logger receives Debug records about fallbacks, parity gaps and matches.
	Logger *slog.Logger

	// OnParityGap, if non-nil, is called whenever bisection continues
	// without having corrected the parity of its destination.
	OnParityGap func(depth int, mask vector.Button)

	// StrictParity turns the parity gap into ErrParityGap.
	StrictParity bool

	// Stats, if non-nil, accumulates counters across calls.
	Stats *Stats

	// internal error recorded during option parsing
	err error
}

// Stats collects search diagnostics. Counters only grow; reuse one Stats
// across calls to aggregate.
type Stats struct {
	Steps       int // budgeted steps consumed
	Nodes       int // DFS frames and bisection levels entered
	MaskSubsets int // subsets tested by the mask solver
	Fallbacks   int // bisection levels handed over to DFS
	ParityGaps  int // bisection levels that continued without parity correction
	MaxDepth    int // deepest DFS or bisection level reached

	AutoFallbacks int // StrategyAuto retries of a whole scenario with DFS
}

// Add folds other into s.
func (s *Stats) Add(other Stats) {
	s.Steps += other.Steps
	s.Nodes += other.Nodes
	s.MaskSubsets += other.MaskSubsets
	s.Fallbacks += other.Fallbacks
	s.AutoFallbacks += other.AutoFallbacks
	s.ParityGaps += other.ParityGaps
	if other.MaxDepth > s.MaxDepth {
		s.MaxDepth = other.MaxDepth
	}
}

// DefaultOptions returns Options with:
//   - Background context
//   - MaxPresses = DefaultMaxPresses
//   - no step budget
//   - a discarding logger
//   - permissive parity handling
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxPresses: DefaultMaxPresses,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxPresses sets the DFS depth cap. limit must be >= 0.
func WithMaxPresses(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("WithMaxPresses(%d): %w", limit, ErrOptionViolation)
			return
		}
		o.MaxPresses = limit
	}
}

// WithStepBudget bounds the search steps of one call; 0 disables the budget.
func WithStepBudget(steps int) Option {
	return func(o *Options) {
		if steps < 0 {
			o.err = fmt.Errorf("WithStepBudget(%d): %w", steps, ErrOptionViolation)
			return
		}
		o.StepBudget = steps
	}
}

// WithLogger routes solver diagnostics to logger. nil keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithOnParityGap installs a hook observing the bisection parity gap.
func WithOnParityGap(fn func(depth int, mask vector.Button)) Option {
	return func(o *Options) {
		o.OnParityGap = fn
	}
}

// WithStrictParity makes bisection fail with ErrParityGap instead of
// continuing past an uncorrectable parity.
func WithStrictParity() Option {
	return func(o *Options) {
		o.StrictParity = true
	}
}

// WithStats accumulates diagnostics into s.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

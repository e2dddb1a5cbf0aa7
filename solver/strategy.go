package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvreach/scenario"
	"github.com/katalvlaran/lvreach/vector"
)

// Strategy selects the entry point used by Solve.
type Strategy int

const (
	// StrategyAuto tries bisection first and falls back to DFS on a miss.
	StrategyAuto Strategy = iota
	// StrategyMask solves the indicator with SolveMask.
	StrategyMask
	// StrategyDFS solves the target with SolveDFS.
	StrategyDFS
	// StrategyBisection solves the target with SolveBisection.
	StrategyBisection
)

// ErrUnknownStrategy is returned by ParseStrategy for an unrecognized name.
var ErrUnknownStrategy = errors.New("solver: unknown strategy")

var strategyNames = [...]string{
	StrategyAuto:      "auto",
	StrategyMask:      "mask",
	StrategyDFS:       "dfs",
	StrategyBisection: "bisection",
}

// String returns the lower-case name of s.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps a name (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}

	return StrategyAuto, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
}

// Solve runs strategy on sc and returns a verified solution.
//
// StrategyMask reaches the indicator's parity; every other strategy reaches
// the target. StrategyAuto runs SolveBisection and, when it misses
// (ErrNoSolution, ErrParityGap or vector.ErrIndivisible), retries from
// scratch with SolveDFS, counted in Stats.AutoFallbacks. Every returned
// solution satisfies the round-trip check: the pressed buttons accumulate
// exactly to the destination (to its parity for StrategyMask).
func Solve(sc *scenario.Scenario, strategy Strategy, opts ...Option) (*scenario.Solution, error) {
	e, err := newEngine(sc, opts)
	if err != nil {
		return nil, err
	}
	defer e.finish()

	sol := sc.NewSolution()
	switch strategy {
	case StrategyMask:
		mask := sc.Indicator()
		if err = e.solveMask(mask, sol, sc.NewVector()); err != nil {
			return nil, err
		}

		return sol, verifyParity(sc, sol, mask)
	case StrategyDFS:
		err = e.solveDFS(sc.Target(), sol)
	case StrategyBisection:
		err = e.solveBisection(sc.Target(), sol)
	case StrategyAuto:
		err = e.solveBisection(sc.Target(), sol)
		if isMiss(err) {
			e.stats.AutoFallbacks++
			e.opts.Logger.Debug("auto fallback to dfs", slog.String("cause", err.Error()))
			sol.Reset()
			err = e.solveDFS(sc.Target(), sol)
		}
	default:
		return nil, fmt.Errorf("%v: %w", strategy, ErrUnknownStrategy)
	}
	if err != nil {
		return nil, err
	}

	if err = sc.Verify(sol, sc.Target()); err != nil {
		return nil, err
	}

	return sol, nil
}

func isMiss(err error) bool {
	return errors.Is(err, ErrNoSolution) ||
		errors.Is(err, ErrParityGap) ||
		errors.Is(err, vector.ErrIndivisible)
}

func verifyParity(sc *scenario.Scenario, sol *scenario.Solution, mask vector.Button) error {
	reached, err := sc.Accumulate(sol)
	if err != nil {
		return err
	}
	ok, err := reached.MatchesMask(mask)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("parity %s, want %s: %w", reached.SkimToParity(), mask, scenario.ErrNotReached)
	}

	return nil
}

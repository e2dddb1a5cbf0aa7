package solver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvreach/scenario"
	"github.com/katalvlaran/lvreach/vector"
)

// SolveBisection decomposes destination by parity: at each level the odd
// dimensions are cleared with a SolveMask subset, the even remainder is
// halved and solved one level down, and that sub-solution is doubled.
//
// When the parity subset overshoots the destination, the level is handed
// to SolveDFS on the unmodified destination and DFS's answer is final for
// that level. When no parity subset exists, the level continues without
// correction (a parity gap): the gap is counted in Stats.ParityGaps,
// reported to the OnParityGap hook and logged at Debug, and with
// WithStrictParity it fails with ErrParityGap instead. Without strict mode
// the subsequent halving fails with vector.ErrIndivisible.
//
// destination is not modified. Depth is bounded by log2 of the largest
// component.
//
// Errors: ErrNoSolution, ErrParityGap, vector.ErrIndivisible,
// ErrStepBudget, context errors, vector.ErrDimensionMismatch,
// scenario.ErrButtonCountMismatch.
func SolveBisection(sc *scenario.Scenario, destination vector.Vector, sol *scenario.Solution, opts ...Option) error {
	e, err := newEngine(sc, opts)
	if err != nil {
		return err
	}
	defer e.finish()

	return e.solveBisection(destination, sol)
}

func (e *engine) solveBisection(destination vector.Vector, sol *scenario.Solution) error {
	if err := e.checkDims("destination", len(destination)); err != nil {
		return err
	}
	if err := e.checkSolution(sol); err != nil {
		return err
	}

	return e.bisect(destination.Clone(), 0, sol)
}

// bisect owns destination and may mutate it.
func (e *engine) bisect(destination vector.Vector, depth int, acc *scenario.Solution) error {
	// 1. Nothing left at this level.
	if destination.IsZero() {
		return nil
	}
	if err := e.tick(); err != nil {
		return err
	}
	e.enter(depth)

	// 2. Parity remainder.
	mask := destination.SkimToParity()

	// 3. Clear odd dimensions with a parity subset.
	if !mask.IsZero() {
		partial := e.sc.NewSolution()
		effect := e.sc.NewVector()
		err := e.solveMask(mask, partial, effect)
		switch {
		case err == nil:
			if subErr := destination.SubtractVector(effect); subErr != nil {
				if !errors.Is(subErr, vector.ErrUnderflow) {
					return subErr
				}
				e.stats.Fallbacks++
				e.opts.Logger.Debug("bisection fallback to dfs",
					slog.Int("depth", depth),
					slog.String("destination", destination.String()),
					slog.String("effect", effect.String()),
				)

				return e.dfs(e.sc.NewVector(), destination, 0, acc)
			}
			if err = acc.Combine(partial); err != nil {
				return err
			}
		case errors.Is(err, ErrNoSolution):
			e.stats.ParityGaps++
			if e.opts.OnParityGap != nil {
				e.opts.OnParityGap(depth, mask)
			}
			e.opts.Logger.Debug("bisection parity gap",
				slog.Int("depth", depth),
				slog.String("mask", mask.String()),
			)
			if e.opts.StrictParity {
				return fmt.Errorf("depth %d mask %s: %w", depth, mask, ErrParityGap)
			}
		default:
			return err
		}
	}

	// 4. Halve, solve one level down, double.
	if destination.IsZero() {
		return nil
	}
	if err := destination.DivideByScalar(vector.BalanceFactor); err != nil {
		return err
	}
	half := e.sc.NewSolution()
	if err := e.bisect(destination, depth+1, half); err != nil {
		return err
	}
	half.Multiply(vector.BalanceFactor)

	return acc.Combine(half)
}

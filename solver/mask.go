package solver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvreach/combination"
	"github.com/katalvlaran/lvreach/scenario"
	"github.com/katalvlaran/lvreach/vector"
)

// SolveMask finds the smallest set of distinct buttons whose combined
// effect has exactly the per-dimension parity of mask, and presses each of
// them once in sol.
//
// Buttons toggle parity, so pressing one twice is the same as not pressing
// it: each button is used at most once. Subset sizes 1..n-1 are tried in
// increasing order, subsets of one size in lexicographic order, and the
// first match wins. The empty and the full set are never attempted.
//
// scratch must have the scenario's dimensions; on success it holds the
// combined effect of the chosen buttons. sol is expected to be empty; it is
// not reset. A zero mask succeeds without pressing anything.
//
// Errors: ErrNoSolution, vector.ErrDimensionMismatch, vector.ErrNotBinary,
// scenario.ErrButtonCountMismatch, ErrStepBudget, context errors.
//
// Complexity: at most 2^n - 2 subsets of O(n·D) each; n ≤ 12.
func SolveMask(sc *scenario.Scenario, mask vector.Button, sol *scenario.Solution, scratch vector.Vector, opts ...Option) error {
	e, err := newEngine(sc, opts)
	if err != nil {
		return err
	}
	defer e.finish()

	return e.solveMask(mask, sol, scratch)
}

func (e *engine) solveMask(mask vector.Button, sol *scenario.Solution, scratch vector.Vector) error {
	// 1. Validate shapes.
	if err := e.checkDims("mask", len(mask)); err != nil {
		return err
	}
	for i, x := range mask {
		if x > 1 {
			return fmt.Errorf("mask entry %d=%d: %w", i, x, vector.ErrNotBinary)
		}
	}
	if err := e.checkDims("scratch", len(scratch)); err != nil {
		return err
	}
	if err := e.checkSolution(sol); err != nil {
		return err
	}

	scratch.Reset()
	if mask.IsZero() {
		return nil
	}

	// 2. Walk subset sizes 1..n-1.
	n := e.sc.ButtonCount()
	for size := 1; size < n; size++ {
		it := combination.New(n, size)
		for it.Next() {
			if err := e.tick(); err != nil {
				return err
			}
			e.stats.MaskSubsets++

			idx := it.Indices()
			ok, err := e.matches(idx, mask, scratch)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}

			// 3. Record one press per chosen button.
			for _, id := range idx {
				if err := sol.Press(id); err != nil {
					return errors.Join(ErrButtonNotFound, err)
				}
			}
			e.opts.Logger.Debug("mask matched",
				slog.String("mask", mask.String()),
				slog.Any("buttons", idx),
				slog.String("effect", scratch.String()),
			)

			return nil
		}
	}

	return ErrNoSolution
}

// matches accumulates the effect of idx into scratch and tests its parity.
func (e *engine) matches(idx []int, mask vector.Button, scratch vector.Vector) (bool, error) {
	scratch.Reset()
	for _, id := range idx {
		b, err := e.button(id)
		if err != nil {
			return false, err
		}
		if err := scratch.Add(b); err != nil {
			return false, err
		}
	}

	return scratch.MatchesMask(mask)
}

package solver

import (
	"errors"

	"github.com/katalvlaran/lvreach/scenario"
	"github.com/katalvlaran/lvreach/vector"
)

// SolveDFS searches for press counts driving the zero vector to destination
// and records them in sol.
//
// At every level the admissible buttons are ranked by Rank and tried in
// ascending-distance order. A press that lands on destination ends the
// search; otherwise the walk descends until MaxPresses levels deep, undoing
// the press on a miss. The result is a working solution, not necessarily
// one with the fewest presses.
//
// A zero destination succeeds immediately without touching sol. On
// failure sol is left in an unspecified state.
//
// Errors: ErrNoSolution, ErrStepBudget, context errors,
// vector.ErrDimensionMismatch, scenario.ErrButtonCountMismatch.
//
// Complexity: exponential in the worst case; bounded by MaxPresses in depth
// and by StepBudget in work when one is set.
func SolveDFS(sc *scenario.Scenario, destination vector.Vector, sol *scenario.Solution, opts ...Option) error {
	e, err := newEngine(sc, opts)
	if err != nil {
		return err
	}
	defer e.finish()

	return e.solveDFS(destination, sol)
}

func (e *engine) solveDFS(destination vector.Vector, sol *scenario.Solution) error {
	if err := e.checkDims("destination", len(destination)); err != nil {
		return err
	}
	if err := e.checkSolution(sol); err != nil {
		return err
	}
	if destination.IsZero() {
		return nil
	}

	return e.dfs(e.sc.NewVector(), destination, 0, sol)
}

// dfs explores one level. current is mutated in place and restored on a miss.
func (e *engine) dfs(current, destination vector.Vector, depth int, sol *scenario.Solution) error {
	// 1. Trivial success.
	if current.IsZero() && destination.IsZero() {
		return nil
	}
	e.enter(depth)

	// 2. Rank candidates into this level's buffer.
	order := e.order(depth)
	if err := Rank(e.sc, current, destination, order); err != nil {
		return err
	}

	// 3. Try each candidate in ranked order.
	for _, id := range order.IDs() {
		if err := e.tick(); err != nil {
			return err
		}
		b, err := e.button(id)
		if err != nil {
			return err
		}
		if err = sol.Press(id); err != nil {
			return errors.Join(ErrButtonNotFound, err)
		}
		if err = current.Add(b); err != nil {
			return err
		}
		if current.Equal(destination) {
			return nil
		}

		if depth < e.opts.MaxPresses {
			err = e.dfs(current, destination, depth+1, sol)
			if err == nil {
				return nil
			}
			if !errors.Is(err, ErrNoSolution) {
				return err
			}
		}

		// 4. Miss: undo and try the next candidate.
		if err = sol.Unpress(id); err != nil {
			return err
		}
		if err = current.Subtract(b); err != nil {
			return err
		}
	}

	// 5. Exhausted.
	return ErrNoSolution
}

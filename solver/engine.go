package solver

import (
	"fmt"

	"github.com/katalvlaran/lvreach/scenario"
	"github.com/katalvlaran/lvreach/vector"
)

// ctxCheckMask spaces out context checks: once every 256 steps.
const ctxCheckMask = 255

// engine carries the per-call search state. Every entry point builds its
// own engine, so concurrent solves never share buffers.
type engine struct {
	sc    *scenario.Scenario
	opts  Options
	stats Stats

	// orders is a per-depth arena of ranking buffers, grown lazily and
	// reused by sibling frames at the same depth.
	orders []*Order
}

func newEngine(sc *scenario.Scenario, opts []Option) (*engine, error) {
	if sc == nil {
		return nil, ErrScenarioNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &engine{sc: sc, opts: o}, nil
}

// finish publishes the counters of this call.
func (e *engine) finish() {
	if e.opts.Stats != nil {
		e.opts.Stats.Add(e.stats)
	}
}

// tick consumes one step, enforcing the budget and, sparsely, the context.
func (e *engine) tick() error {
	e.stats.Steps++
	if e.opts.StepBudget > 0 && e.stats.Steps > e.opts.StepBudget {
		return ErrStepBudget
	}
	if (e.stats.Steps-1)&ctxCheckMask == 0 {
		select {
		case <-e.opts.Ctx.Done():
			return e.opts.Ctx.Err()
		default:
		}
	}

	return nil
}

// enter records a new search level.
func (e *engine) enter(depth int) {
	e.stats.Nodes++
	if depth > e.stats.MaxDepth {
		e.stats.MaxDepth = depth
	}
}

// order returns the ranking buffer for depth.
func (e *engine) order(depth int) *Order {
	for len(e.orders) <= depth {
		e.orders = append(e.orders, NewOrder(e.sc.ButtonCount()))
	}

	return e.orders[depth]
}

// button resolves a button index, mapping range errors to ErrButtonNotFound.
func (e *engine) button(id int) (vector.Button, error) {
	b, err := e.sc.Button(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrButtonNotFound, err)
	}

	return b, nil
}

func (e *engine) checkSolution(sol *scenario.Solution) error {
	if sol == nil {
		return ErrSolutionNil
	}
	if sol.ButtonCount() != e.sc.ButtonCount() {
		return fmt.Errorf("solution for %d buttons, scenario has %d: %w",
			sol.ButtonCount(), e.sc.ButtonCount(), scenario.ErrButtonCountMismatch)
	}

	return nil
}

func (e *engine) checkDims(name string, d int) error {
	if d != e.sc.Dimensions() {
		return fmt.Errorf("%s has %d dimensions, scenario has %d: %w",
			name, d, e.sc.Dimensions(), vector.ErrDimensionMismatch)
	}

	return nil
}

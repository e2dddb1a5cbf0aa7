package solver

import (
	"fmt"

	"github.com/katalvlaran/lvreach/scenario"
	"github.com/katalvlaran/lvreach/vector"
)

// Rank stages into order every admissible button, sorted by the squared
// distance from (current + button) to destination, ascending.
//
// A button is admissible when current + button does not exceed destination
// in any dimension: presses only add, so an overshoot can never be undone.
// Equal distances keep natural button order.
//
// order is reset first. Errors:
//   - ErrInsufficientCapacity   order.Cap() < sc.ButtonCount().
//   - vector.ErrDimensionMismatch  current/destination differ from sc.
//
// Complexity: O(B·D + B²) with B ≤ 12 buttons, no allocation.
func Rank(sc *scenario.Scenario, current, destination vector.Vector, order *Order) error {
	if sc == nil {
		return ErrScenarioNil
	}
	if order == nil {
		return fmt.Errorf("Rank: nil order: %w", ErrInsufficientCapacity)
	}
	order.Reset()
	n := sc.ButtonCount()
	if order.Cap() < n {
		return fmt.Errorf("Rank: capacity %d < %d buttons: %w", order.Cap(), n, ErrInsufficientCapacity)
	}

	// 1. Distances of admissible candidates, in button order.
	var dist [scenario.MaxButtons]uint64
	for id := 0; id < n; id++ {
		b, err := sc.Button(id)
		if err != nil {
			return fmt.Errorf("Rank: %w: %w", ErrButtonNotFound, err)
		}
		d, ok, err := current.SquaredDistanceAfter(b, destination)
		if err != nil {
			return fmt.Errorf("Rank: %w", err)
		}
		if !ok {
			continue
		}
		dist[id] = d
		order.push(id)
	}

	// 2. Stable insertion sort by distance.
	ids := order.IDs()
	for i := 1; i < len(ids); i++ {
		id := ids[i]
		j := i
		for j > 0 && dist[ids[j-1]] > dist[id] {
			ids[j] = ids[j-1]
			j--
		}
		ids[j] = id
	}

	return nil
}

package scenario

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvreach/vector"
)

// Scenario is one problem instance: an ordered list of buttons, the target
// vector they must reach, and the indicator parity mask.
// A Scenario is immutable after New; solvers only read it, so one Scenario
// may be shared by concurrent solves.
type Scenario struct {
	indicator vector.Button
	buttons   []vector.Button
	target    vector.Vector
}

// New validates and assembles a Scenario. Inputs are copied.
//
// Errors:
//   - ErrNoButtons / ErrTooManyButtons  for a button count outside [1, MaxButtons].
//   - vector.ErrDimensionMismatch       if any operand differs in dimensions.
//   - vector.ErrTooManyDimensions       above vector.MaxDimensions.
//   - vector.ErrNotBinary               for a non 0/1 button entry.
func New(indicator vector.Button, buttons []vector.Button, target vector.Vector) (*Scenario, error) {
	// 1. Shape checks.
	if len(buttons) == 0 {
		return nil, ErrNoButtons
	}
	if len(buttons) > MaxButtons {
		return nil, fmt.Errorf("New: %d buttons: %w", len(buttons), ErrTooManyButtons)
	}
	d := len(target)
	if d > vector.MaxDimensions {
		return nil, fmt.Errorf("New: %d dimensions: %w", d, vector.ErrTooManyDimensions)
	}
	if len(indicator) != d {
		return nil, fmt.Errorf("New: indicator has %d dimensions, target %d: %w",
			len(indicator), d, vector.ErrDimensionMismatch)
	}
	if err := checkBinary(indicator); err != nil {
		return nil, fmt.Errorf("New: indicator: %w", err)
	}

	// 2. Copy buttons, checking each.
	owned := make([]vector.Button, len(buttons))
	for i, b := range buttons {
		if len(b) != d {
			return nil, fmt.Errorf("New: button %d has %d dimensions, target %d: %w",
				i, len(b), d, vector.ErrDimensionMismatch)
		}
		if err := checkBinary(b); err != nil {
			return nil, fmt.Errorf("New: button %d: %w", i, err)
		}
		owned[i] = b.Clone()
	}
	for i, x := range target {
		if x < 0 {
			return nil, fmt.Errorf("New: target[%d]=%d: %w", i, x, vector.ErrNegativeComponent)
		}
	}

	return &Scenario{
		indicator: indicator.Clone(),
		buttons:   owned,
		target:    target.Clone(),
	}, nil
}

func checkBinary(b vector.Button) error {
	for i, x := range b {
		if x > 1 {
			return fmt.Errorf("entry %d=%d: %w", i, x, vector.ErrNotBinary)
		}
	}

	return nil
}

// Dimensions reports the dimension count shared by every component.
func (s *Scenario) Dimensions() int { return len(s.target) }

// ButtonCount reports the number of buttons.
func (s *Scenario) ButtonCount() int { return len(s.buttons) }

// Button returns button i. The returned slice must not be modified.
func (s *Scenario) Button(i int) (vector.Button, error) {
	if i < 0 || i >= len(s.buttons) {
		return nil, fmt.Errorf("Button(%d) of %d: %w", i, len(s.buttons), ErrButtonIndex)
	}

	return s.buttons[i], nil
}

// Buttons returns a copy of the button list.
func (s *Scenario) Buttons() []vector.Button {
	out := make([]vector.Button, len(s.buttons))
	for i, b := range s.buttons {
		out[i] = b.Clone()
	}

	return out
}

// Indicator returns a copy of the indicator parity mask.
func (s *Scenario) Indicator() vector.Button { return s.indicator.Clone() }

// Target returns a copy of the target vector.
func (s *Scenario) Target() vector.Vector { return s.target.Clone() }

// NewSolution returns an all-zero Solution sized for s.
func (s *Scenario) NewSolution() *Solution { return NewSolution(len(s.buttons)) }

// NewVector returns a zero Vector with the dimensions of s.
func (s *Scenario) NewVector() vector.Vector { return make(vector.Vector, len(s.target)) }

// Accumulate re-derives the vector reached by sol: sum(presses[i]*buttons[i]).
func (s *Scenario) Accumulate(sol *Solution) (vector.Vector, error) {
	if sol == nil || sol.ButtonCount() != len(s.buttons) {
		return nil, fmt.Errorf("Accumulate: %w", ErrButtonCountMismatch)
	}
	out := s.NewVector()
	for i, b := range s.buttons {
		n := sol.presses[i]
		if n == 0 {
			continue
		}
		for d, x := range b {
			out[d] += n * int(x)
		}
	}

	return out, nil
}

// Verify checks the round-trip property: sol reaches destination exactly.
func (s *Scenario) Verify(sol *Solution, destination vector.Vector) error {
	reached, err := s.Accumulate(sol)
	if err != nil {
		return err
	}
	if !reached.Equal(destination) {
		return fmt.Errorf("Verify: reached %v, want %v: %w", reached, destination, ErrNotReached)
	}

	return nil
}

// String renders s in the line notation accepted by ParseLine.
func (s *Scenario) String() string {
	var sb strings.Builder
	sb.WriteString(s.indicator.String())
	for _, b := range s.buttons {
		sb.WriteString(" (")
		for i, d := range b.Indices() {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%d", d)
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(' ')
	sb.WriteString(s.target.String())

	return sb.String()
}

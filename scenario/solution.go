package scenario

import (
	"fmt"
	"strconv"
	"strings"
)

// Solution holds per-button press counts, index-aligned with a Scenario's
// button list. The zero value is an empty solution for zero buttons.
type Solution struct {
	presses []int
}

// NewSolution returns an all-zero Solution for n buttons.
func NewSolution(n int) *Solution {
	if n < 0 {
		n = 0
	}

	return &Solution{presses: make([]int, n)}
}

// SolutionFromPresses copies presses into a new Solution.
func SolutionFromPresses(presses ...int) (*Solution, error) {
	out := make([]int, len(presses))
	for i, p := range presses {
		if p < 0 {
			return nil, fmt.Errorf("SolutionFromPresses: presses[%d]=%d: %w", i, p, ErrValueOutOfRange)
		}
		out[i] = p
	}

	return &Solution{presses: out}, nil
}

// ButtonCount reports the number of buttons s is sized for.
func (s *Solution) ButtonCount() int { return len(s.presses) }

// Presses returns a copy of the press counts.
func (s *Solution) Presses() []int {
	out := make([]int, len(s.presses))
	copy(out, s.presses)

	return out
}

// At returns the press count of button i, or 0 when out of range.
func (s *Solution) At(i int) int {
	if i < 0 || i >= len(s.presses) {
		return 0
	}

	return s.presses[i]
}

// Press increments button i.
func (s *Solution) Press(i int) error {
	if i < 0 || i >= len(s.presses) {
		return fmt.Errorf("Press(%d) of %d: %w", i, len(s.presses), ErrButtonIndex)
	}
	s.presses[i]++

	return nil
}

// Unpress decrements button i.
func (s *Solution) Unpress(i int) error {
	if i < 0 || i >= len(s.presses) {
		return fmt.Errorf("Unpress(%d) of %d: %w", i, len(s.presses), ErrButtonIndex)
	}
	if s.presses[i] == 0 {
		return fmt.Errorf("Unpress(%d): %w", i, ErrPressUnderflow)
	}
	s.presses[i]--

	return nil
}

// Combine adds other into s elementwise.
func (s *Solution) Combine(other *Solution) error {
	if other == nil || len(other.presses) != len(s.presses) {
		return fmt.Errorf("Combine: %w", ErrButtonCountMismatch)
	}
	for i, p := range other.presses {
		s.presses[i] += p
	}

	return nil
}

// Multiply scales every press count by k.
func (s *Solution) Multiply(k int) {
	for i := range s.presses {
		s.presses[i] *= k
	}
}

// PressCount returns the total number of presses.
func (s *Solution) PressCount() int {
	total := 0
	for _, p := range s.presses {
		total += p
	}

	return total
}

// Reset zeroes every press count.
func (s *Solution) Reset() {
	for i := range s.presses {
		s.presses[i] = 0
	}
}

// Clone returns an independent copy of s.
func (s *Solution) Clone() *Solution {
	return &Solution{presses: s.Presses()}
}

// Equal reports whether both solutions press every button equally often.
func (s *Solution) Equal(other *Solution) bool {
	if other == nil || len(s.presses) != len(other.presses) {
		return false
	}
	for i := range s.presses {
		if s.presses[i] != other.presses[i] {
			return false
		}
	}

	return true
}

// String renders s as a comma separated press list, e.g. "1,4,0,2,2,1".
func (s *Solution) String() string {
	parts := make([]string, len(s.presses))
	for i, p := range s.presses {
		parts[i] = strconv.Itoa(p)
	}

	return strings.Join(parts, ",")
}

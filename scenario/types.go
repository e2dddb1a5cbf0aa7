// Package scenario defines the problem instance (Scenario), the answer
// (Solution), and the textual line format both are read from.
package scenario

import "errors"

// MaxButtons is the largest number of buttons a Scenario may hold.
const MaxButtons = 12

// MaxPressValue bounds a single press count parsed from text.
const MaxPressValue = 65535

var (
	// ErrNoButtons indicates a Scenario without any button.
	ErrNoButtons = errors.New("scenario: no buttons")

	// ErrTooManyButtons indicates more than MaxButtons buttons.
	ErrTooManyButtons = errors.New("scenario: too many buttons")

	// ErrButtonIndex indicates a button index outside [0, ButtonCount).
	ErrButtonIndex = errors.New("scenario: button index out of range")

	// ErrButtonCountMismatch indicates a Solution sized for a different Scenario.
	ErrButtonCountMismatch = errors.New("scenario: button count mismatch")

	// ErrPressUnderflow indicates an Unpress on a button with zero presses.
	ErrPressUnderflow = errors.New("scenario: press count underflow")

	// ErrNotReached indicates that a Solution does not reach its destination.
	ErrNotReached = errors.New("scenario: solution does not reach destination")

	// ErrMalformed indicates a token that does not follow the bracket notation.
	ErrMalformed = errors.New("scenario: malformed input")

	// ErrMissingComponent indicates a line without indicator, buttons or target.
	ErrMissingComponent = errors.New("scenario: missing component")

	// ErrDuplicateComponent indicates a second indicator or target on one line.
	ErrDuplicateComponent = errors.New("scenario: duplicate component")

	// ErrValueOutOfRange indicates a number above the accepted maximum.
	ErrValueOutOfRange = errors.New("scenario: value out of range")
)

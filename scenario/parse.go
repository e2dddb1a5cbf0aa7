package scenario

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvreach/vector"
)

// ParseLine reads one Scenario from the bracket notation
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// Tokens are whitespace separated: exactly one indicator "[...]" first, then
// one or more buttons "(i,j,...)", and exactly one target "{a,b,...}".
// Button indices refer to indicator positions.
func ParseLine(line string) (*Scenario, error) {
	var (
		indicator vector.Button
		target    vector.Vector
		buttons   []vector.Button
		err       error
	)

	for _, tok := range strings.Fields(line) {
		switch tok[0] {
		case '[':
			if indicator != nil {
				return nil, fmt.Errorf("ParseLine: second indicator %q: %w", tok, ErrDuplicateComponent)
			}
			if indicator, err = parseIndicator(tok); err != nil {
				return nil, err
			}
		case '(':
			if indicator == nil {
				return nil, fmt.Errorf("ParseLine: button %q before indicator: %w", tok, ErrMissingComponent)
			}
			if len(buttons) >= MaxButtons {
				return nil, fmt.Errorf("ParseLine: button %q: %w", tok, ErrTooManyButtons)
			}
			b, err := parseButton(tok, len(indicator))
			if err != nil {
				return nil, err
			}
			buttons = append(buttons, b)
		case '{':
			if target != nil {
				return nil, fmt.Errorf("ParseLine: second target %q: %w", tok, ErrDuplicateComponent)
			}
			if target, err = parseTarget(tok); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("ParseLine: unexpected token %q: %w", tok, ErrMalformed)
		}
	}

	switch {
	case indicator == nil:
		return nil, fmt.Errorf("ParseLine: no indicator: %w", ErrMissingComponent)
	case target == nil:
		return nil, fmt.Errorf("ParseLine: no target: %w", ErrMissingComponent)
	case len(buttons) == 0:
		return nil, fmt.Errorf("ParseLine: no buttons: %w", ErrMissingComponent)
	}

	return New(indicator, buttons, target)
}

// parseIndicator reads "[.##.]".
func parseIndicator(tok string) (vector.Button, error) {
	body, err := unwrap(tok, '[', ']')
	if err != nil {
		return nil, err
	}
	if len(body) > vector.MaxDimensions {
		return nil, fmt.Errorf("indicator %q: %d dimensions: %w", tok, len(body), vector.ErrTooManyDimensions)
	}
	b := make(vector.Button, len(body))
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case vector.EmptyChar:
		case vector.FullChar:
			b[i] = 1
		default:
			return nil, fmt.Errorf("indicator %q: character %q: %w", tok, body[i], ErrMalformed)
		}
	}

	return b, nil
}

// parseButton reads "(1,3)" against d dimensions. "()" is a no-op button.
func parseButton(tok string, d int) (vector.Button, error) {
	body, err := unwrap(tok, '(', ')')
	if err != nil {
		return nil, err
	}
	indices, err := parseNumbers(body, vector.MaxComponent)
	if err != nil {
		return nil, fmt.Errorf("button %q: %w", tok, err)
	}
	b, err := vector.NewButton(d, indices...)
	if err != nil {
		return nil, fmt.Errorf("button %q: %w", tok, err)
	}

	return b, nil
}

// parseTarget reads "{3,5,4,7}".
func parseTarget(tok string) (vector.Vector, error) {
	body, err := unwrap(tok, '{', '}')
	if err != nil {
		return nil, err
	}
	values, err := parseNumbers(body, vector.MaxComponent)
	if err != nil {
		return nil, fmt.Errorf("target %q: %w", tok, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("target %q: empty: %w", tok, ErrMalformed)
	}
	v, err := vector.FromValues(values...)
	if err != nil {
		return nil, fmt.Errorf("target %q: %w", tok, err)
	}

	return v, nil
}

func unwrap(tok string, open, closing byte) (string, error) {
	if len(tok) < 2 || tok[0] != open || tok[len(tok)-1] != closing {
		return "", fmt.Errorf("token %q: expected %c...%c: %w", tok, open, closing, ErrMalformed)
	}

	return tok[1 : len(tok)-1], nil
}

// parseNumbers splits a comma separated list of non-negative integers,
// each at most maxValue. An empty body yields an empty list.
func parseNumbers(body string, maxValue int) ([]int, error) {
	if body == "" {
		return nil, nil
	}
	parts := strings.Split(body, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("number %q: %w", p, ErrMalformed)
		}
		if n > maxValue {
			return nil, fmt.Errorf("number %d > %d: %w", n, maxValue, ErrValueOutOfRange)
		}
		out = append(out, n)
	}

	return out, nil
}

// ParseSolution reads a press list such as "1,4,0,2,2,1" sized for n buttons.
func ParseSolution(s string, n int) (*Solution, error) {
	presses, err := parseNumbers(strings.TrimSpace(s), MaxPressValue)
	if err != nil {
		return nil, fmt.Errorf("ParseSolution: %w", err)
	}
	if len(presses) != n {
		return nil, fmt.Errorf("ParseSolution: %d presses for %d buttons: %w", len(presses), n, ErrButtonCountMismatch)
	}

	return SolutionFromPresses(presses...)
}

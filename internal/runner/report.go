package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvreach/solver"
)

// LineResult is the outcome of one input line.
type LineResult struct {
	Number int    `json:"number"`
	Line   string `json:"line"`

	// Indicator and Target hold the press lists, empty when not computed.
	Indicator        string `json:"indicator,omitempty"`
	IndicatorPresses int    `json:"indicator_presses"`
	Target           string `json:"target,omitempty"`
	TargetPresses    int    `json:"target_presses"`

	Stats    solver.Stats  `json:"stats"`
	Duration time.Duration `json:"duration_ns"`
	Error    string        `json:"error,omitempty"`

	err error
}

// Err returns the failure of the line, or nil.
func (l LineResult) Err() error { return l.err }

// Failed reports whether the line failed.
func (l LineResult) Failed() bool { return l.err != nil }

// Report aggregates a run.
type Report struct {
	RunID    uuid.UUID `json:"run_id"`
	Strategy string    `json:"strategy"`
	Part     string    `json:"part"`

	Lines []LineResult `json:"lines"`

	// Totals sum the press counts of every successful line.
	IndicatorTotal int `json:"indicator_total"`
	TargetTotal    int `json:"target_total"`
	Failed         int `json:"failed"`

	Duration time.Duration `json:"duration_ns"`
}

// OK reports whether every line succeeded.
func (r *Report) OK() bool { return r.Failed == 0 }

// WriteJSON encodes r as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}

func (r *Report) tally() {
	r.IndicatorTotal, r.TargetTotal, r.Failed = 0, 0, 0
	for _, l := range r.Lines {
		if l.Failed() {
			r.Failed++
			continue
		}
		r.IndicatorTotal += l.IndicatorPresses
		r.TargetTotal += l.TargetPresses
	}
}

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/lvreach/internal/runner"
)

var (
	okColor     = color.New(color.FgGreen)
	failColor   = color.New(color.FgRed, color.Bold)
	dimColor    = color.New(color.Faint)
	headerColor = color.New(color.Bold)
)

// renderReport writes report to w in the requested format.
func renderReport(w io.Writer, report *runner.Report, format OutputFormat) error {
	if format == FormatJSON {
		return report.WriteJSON(w)
	}

	for _, l := range report.Lines {
		if l.Failed() {
			failColor.Fprintf(w, "line %d FAIL", l.Number)
			fmt.Fprintf(w, "  %s\n", l.Error)
			continue
		}
		okColor.Fprintf(w, "line %d ok", l.Number)
		if l.Indicator != "" {
			fmt.Fprintf(w, "  indicator %s (%d)", l.Indicator, l.IndicatorPresses)
		}
		if l.Target != "" {
			fmt.Fprintf(w, "  target %s (%d)", l.Target, l.TargetPresses)
		}
		dimColor.Fprintf(w, "  nodes=%d", l.Stats.Nodes)
		fmt.Fprintln(w)
	}

	headerColor.Fprintf(w, "indicator total: %d\n", report.IndicatorTotal)
	headerColor.Fprintf(w, "target total: %d\n", report.TargetTotal)
	if report.Failed > 0 {
		failColor.Fprintf(w, "failed: %d of %d\n", report.Failed, len(report.Lines))
	}
	dimColor.Fprintf(w, "run %s (%s, %s) in %s\n", report.RunID, report.Strategy, report.Part, report.Duration)

	return nil
}

// Package runner is the driver loop of lvreach: it reads scenario lines,
// solves them on a bounded worker pool and aggregates the press totals.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvreach/scenario"
	"github.com/katalvlaran/lvreach/solver"
)

// Span and attribute names.
const (
	SpanRun  = "runner.Run"
	SpanLine = "runner.Line"

	AttrRunID        = "lvreach.run.id"
	AttrStrategy     = "lvreach.strategy"
	AttrWorkers      = "lvreach.workers"
	AttrLineNumber   = "lvreach.line.number"
	AttrIndicatorSum = "lvreach.indicator.presses"
	AttrTargetSum    = "lvreach.target.presses"
	AttrLinesFailed  = "lvreach.lines.failed"
	AttrSearchNodes  = "lvreach.search.nodes"
	AttrSearchGaps   = "lvreach.search.parity_gaps"
)

const (
	defaultWorkers    = 4
	maxScanTokenBytes = 1 << 20
)

// Runner solves batches of lines. A Runner is safe for concurrent use.
type Runner struct {
	logger      *slog.Logger
	tracer      trace.Tracer
	workers     int
	strategy    solver.Strategy
	part        Part
	lineTimeout time.Duration
	failFast    bool
	solverOpts  []solver.Option
}

// New creates a Runner with the given options.
func New(options ...RunnerOption) *Runner {
	r := &Runner{
		logger:   slog.Default(),
		tracer:   noop.NewTracerProvider().Tracer("lvreach/runner"),
		workers:  defaultWorkers,
		strategy: solver.StrategyAuto,
		part:     PartBoth,
	}
	for _, opt := range options {
		opt(r)
	}

	return r
}

// Run solves every non-blank line of in. Lines starting with '#' are
// comments. Failing lines are recorded in the report; with fail-fast the
// first failure cancels the run and is returned.
func (r *Runner) Run(ctx context.Context, in io.Reader) (*Report, error) {
	start := time.Now()
	report := &Report{
		RunID:    uuid.New(),
		Strategy: r.strategy.String(),
		Part:     r.part.String(),
	}

	ctx, span := r.tracer.Start(ctx, SpanRun, trace.WithAttributes(
		attribute.String(AttrRunID, report.RunID.String()),
		attribute.String(AttrStrategy, report.Strategy),
		attribute.Int(AttrWorkers, r.workers),
	))
	defer span.End()

	// 1. Read input.
	lines, err := readLines(in)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	report.Lines = make([]LineResult, len(lines))

	// 2. Fan out; each worker owns its result slot.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, l := range lines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				report.Lines[i] = LineResult{Number: l.number, Line: l.text, Error: err.Error(), err: err}
				return err
			}
			res := r.solveLine(gctx, l.number, l.text)
			report.Lines[i] = res
			if res.err != nil && r.failFast {
				return fmt.Errorf("line %d: %w", l.number, res.err)
			}

			return nil
		})
	}
	err = g.Wait()

	// 3. Aggregate.
	report.tally()
	report.Duration = time.Since(start)
	span.SetAttributes(
		attribute.Int(AttrIndicatorSum, report.IndicatorTotal),
		attribute.Int(AttrTargetSum, report.TargetTotal),
		attribute.Int(AttrLinesFailed, report.Failed),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return report, err
	}
	span.SetStatus(codes.Ok, "")

	r.logger.Info("run complete",
		"run_id", report.RunID.String(),
		"lines", len(report.Lines),
		"failed", report.Failed,
		"indicator_total", report.IndicatorTotal,
		"target_total", report.TargetTotal,
		"duration", report.Duration,
	)

	return report, nil
}

// SolveLine solves a single line outside a batch.
func (r *Runner) SolveLine(ctx context.Context, line string) LineResult {
	return r.solveLine(ctx, 1, line)
}

func (r *Runner) solveLine(ctx context.Context, number int, line string) LineResult {
	start := time.Now()
	res := LineResult{Number: number, Line: line}

	ctx, span := r.tracer.Start(ctx, SpanLine, trace.WithAttributes(
		attribute.Int(AttrLineNumber, number),
	))
	defer span.End()

	if r.lineTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.lineTimeout)
		defer cancel()
	}

	res.err = r.solve(ctx, line, &res)
	res.Duration = time.Since(start)
	span.SetAttributes(
		attribute.Int(AttrIndicatorSum, res.IndicatorPresses),
		attribute.Int(AttrTargetSum, res.TargetPresses),
		attribute.Int(AttrSearchNodes, res.Stats.Nodes),
		attribute.Int(AttrSearchGaps, res.Stats.ParityGaps),
	)

	if res.err != nil {
		res.Error = res.err.Error()
		span.RecordError(res.err)
		span.SetStatus(codes.Error, res.err.Error())
		r.logger.Warn("line failed", "line", number, "error", res.err)
		return res
	}
	span.SetStatus(codes.Ok, "")
	r.logger.Debug("line solved",
		"line", number,
		"indicator_presses", res.IndicatorPresses,
		"target_presses", res.TargetPresses,
		"nodes", res.Stats.Nodes,
	)

	return res
}

func (r *Runner) solve(ctx context.Context, line string, res *LineResult) error {
	sc, err := scenario.ParseLine(line)
	if err != nil {
		return err
	}

	opts := make([]solver.Option, 0, len(r.solverOpts)+3)
	opts = append(opts, r.solverOpts...)
	opts = append(opts,
		solver.WithContext(ctx),
		solver.WithLogger(r.logger),
		solver.WithStats(&res.Stats),
	)

	if r.part.indicator() {
		sol, err := solver.Solve(sc, solver.StrategyMask, opts...)
		if err != nil {
			return fmt.Errorf("indicator: %w", err)
		}
		res.Indicator = sol.String()
		res.IndicatorPresses = sol.PressCount()
	}
	if r.part.target() {
		sol, err := solver.Solve(sc, r.strategy, opts...)
		if err != nil {
			return fmt.Errorf("target: %w", err)
		}
		res.Target = sol.String()
		res.TargetPresses = sol.PressCount()
	}

	return nil
}

type numberedLine struct {
	number int
	text   string
}

func readLines(in io.Reader) ([]numberedLine, error) {
	var lines []numberedLine
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 4096), maxScanTokenBytes)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, numberedLine{number: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return lines, nil
}

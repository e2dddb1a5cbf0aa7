package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvreach/internal/config"
	"github.com/katalvlaran/lvreach/internal/runner"
	"github.com/katalvlaran/lvreach/solver"
)

// errLinesFailed marks a run that completed with failing lines.
var errLinesFailed = errors.New("some lines failed")

type solveFlags struct {
	strategy     string
	part         string
	workers      int
	maxPresses   int
	stepBudget   int
	strictParity bool
	failFast     bool
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve [file...]",
		Short: "Solve scenario lines from files or stdin",
		Long: `Solve reads scenario lines (from the given files, or stdin when none
are given), solves each one and prints the press counts together with the
indicator and target totals.`,
		Example: `  lvreach solve input.txt
  lvreach generate --count 5 --seed 1 | lvreach solve --strategy dfs -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.strategy, "strategy", "s", "", "Target strategy (auto|mask|dfs|bisection)")
	fl.StringVar(&f.part, "part", "", "Presses to compute (both|indicator|target)")
	fl.IntVarP(&f.workers, "workers", "w", 0, "Lines solved concurrently")
	fl.IntVar(&f.maxPresses, "max-presses", 0, "DFS depth cap")
	fl.IntVar(&f.stepBudget, "step-budget", 0, "Search steps per solve (0 = unlimited)")
	fl.BoolVar(&f.strictParity, "strict-parity", false, "Fail bisection on an uncorrectable parity")
	fl.BoolVar(&f.failFast, "fail-fast", false, "Stop at the first failing line")

	return cmd
}

// applySolveFlags overrides config values with explicitly set flags.
func (a *app) applySolveFlags(cmd *cobra.Command, f *solveFlags) {
	fl := cmd.Flags()
	if fl.Changed("strategy") {
		a.cfg.Solver.Strategy = f.strategy
	}
	if fl.Changed("part") {
		a.cfg.Runner.Parts = f.part
	}
	if fl.Changed("workers") {
		a.cfg.Runner.Workers = f.workers
	}
	if fl.Changed("max-presses") {
		a.cfg.Solver.MaxPresses = f.maxPresses
	}
	if fl.Changed("step-budget") {
		a.cfg.Solver.StepBudget = f.stepBudget
	}
	if fl.Changed("strict-parity") {
		a.cfg.Solver.StrictParity = f.strictParity
	}
	if fl.Changed("fail-fast") {
		a.cfg.Runner.FailFast = f.failFast
	}
}

func (a *app) runSolve(cmd *cobra.Command, args []string, f *solveFlags) error {
	a.applySolveFlags(cmd, f)
	if err := config.NewValidator().Validate(a.cfg); err != nil {
		return err
	}

	r, err := a.newRunner()
	if err != nil {
		return err
	}

	in, closeAll, err := openInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	defer closeAll()

	report, err := r.Run(cmd.Context(), in)
	if report != nil {
		if werr := renderReport(cmd.OutOrStdout(), report, OutputFormat(a.cfg.Output.Format)); werr != nil {
			return werr
		}
	}
	if err != nil {
		return err
	}
	if !report.OK() {
		return fmt.Errorf("%d of %d lines: %w", report.Failed, len(report.Lines), errLinesFailed)
	}

	return nil
}

// newRunner translates the effective configuration into a Runner.
func (a *app) newRunner() (*runner.Runner, error) {
	strategy, err := solver.ParseStrategy(a.cfg.Solver.Strategy)
	if err != nil {
		return nil, err
	}
	part, err := runner.ParsePart(a.cfg.Runner.Parts)
	if err != nil {
		return nil, err
	}

	solverOpts := []solver.Option{
		solver.WithMaxPresses(a.cfg.Solver.MaxPresses),
		solver.WithStepBudget(a.cfg.Solver.StepBudget),
	}
	if a.cfg.Solver.StrictParity {
		solverOpts = append(solverOpts, solver.WithStrictParity())
	}

	return runner.New(
		runner.WithLogger(a.logger),
		runner.WithTracer(a.tp.Tracer("lvreach/runner")),
		runner.WithWorkers(a.cfg.Runner.Workers),
		runner.WithStrategy(strategy),
		runner.WithPart(part),
		runner.WithLineTimeout(a.cfg.Solver.Timeout),
		runner.WithFailFast(a.cfg.Runner.FailFast),
		runner.WithSolverOptions(solverOpts...),
	), nil
}

// openInputs concatenates the named files, or returns stdin when none are given.
func openInputs(stdin io.Reader, paths []string) (io.Reader, func(), error) {
	if len(paths) == 0 {
		return stdin, func() {}, nil
	}

	files := make([]*os.File, 0, len(paths))
	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}
	readers := make([]io.Reader, 0, len(paths)*2)
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("open input: %w", err)
		}
		files = append(files, f)
		// A newline between files keeps an unterminated last line separate.
		readers = append(readers, f, newline{})
	}

	return io.MultiReader(readers...), closeAll, nil
}

type newline struct{}

func (newline) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = '\n'

	return 1, io.EOF
}

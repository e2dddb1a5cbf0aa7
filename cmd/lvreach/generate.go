package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvreach/builder"
	"github.com/katalvlaran/lvreach/scenario"
	"github.com/katalvlaran/lvreach/vector"
)

type generateFlags struct {
	count      int
	seed       int64
	dimensions int
	buttons    int
	maxPresses int
	density    float64
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print random solvable scenario lines",
		Long: `Generate prints scenario lines whose targets are produced by random
press counts, so every line has at least one solution. The same seed
always yields the same lines.`,
		Example: `  lvreach generate --count 100 --seed 7 --buttons 8 > input.txt`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := f.validate(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				f.seed = time.Now().UnixNano()
				a.logger.Info("generated seed", "seed", f.seed)
			}

			lines, err := builder.RandomLines(f.count,
				builder.WithSeed(f.seed),
				builder.WithDimensions(f.dimensions),
				builder.WithButtons(f.buttons),
				builder.WithMaxPresses(f.maxPresses),
				builder.WithDensity(f.density),
			)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, l := range lines {
				fmt.Fprintln(w, l)
			}

			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.count, "count", "n", 10, "Number of lines")
	fl.Int64Var(&f.seed, "seed", 0, "RNG seed (default: time based)")
	fl.IntVarP(&f.dimensions, "dimensions", "d", 4, "Vector dimensions")
	fl.IntVarP(&f.buttons, "buttons", "b", 6, "Buttons per line")
	fl.IntVar(&f.maxPresses, "max-presses", 8, "Upper bound of each hidden press count")
	fl.Float64Var(&f.density, "density", 0.5, "Probability that a button touches a dimension")

	return cmd
}

// validate mirrors the builder option bounds so bad flags become errors
// instead of option panics.
func (f *generateFlags) validate() error {
	switch {
	case f.count < 1:
		return fmt.Errorf("--count must be at least 1 (got: %d)", f.count)
	case f.dimensions < 1 || f.dimensions > vector.MaxDimensions:
		return fmt.Errorf("--dimensions must be in [1,%d] (got: %d)", vector.MaxDimensions, f.dimensions)
	case f.buttons < 1 || f.buttons > scenario.MaxButtons:
		return fmt.Errorf("--buttons must be in [1,%d] (got: %d)", scenario.MaxButtons, f.buttons)
	case f.maxPresses < 0:
		return fmt.Errorf("--max-presses must be at least 0 (got: %d)", f.maxPresses)
	case f.density <= 0 || f.density > 1:
		return fmt.Errorf("--density must be in (0,1] (got: %v)", f.density)
	}

	return nil
}

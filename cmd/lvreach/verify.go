package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvreach/scenario"
)

func newVerifyCmd(a *app) *cobra.Command {
	var indicator bool
	cmd := &cobra.Command{
		Use:   "verify LINE PRESSES",
		Short: "Check a press list against a scenario line",
		Long: `Verify accumulates the presses over the line's buttons and checks that
they reach the target exactly, or with --indicator that they reproduce the
indicator's parity.`,
		Example: `  lvreach verify "[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}" 1,4,0,2,2,1`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.ParseLine(args[0])
			if err != nil {
				return err
			}
			sol, err := scenario.ParseSolution(args[1], sc.ButtonCount())
			if err != nil {
				return err
			}

			reached, err := sc.Accumulate(sol)
			if err != nil {
				return err
			}
			if indicator {
				if !reached.SkimToParity().Equal(sc.Indicator()) {
					err = fmt.Errorf("parity %s, want %s: %w", reached.SkimToParity(), sc.Indicator(), scenario.ErrNotReached)
				}
			} else {
				err = sc.Verify(sol, sc.Target())
			}

			w := cmd.OutOrStdout()
			if err != nil {
				a.logger.Debug("verify failed", "line", args[0], "presses", args[1], "error", err)
				failColor.Fprintf(w, "FAIL")
				fmt.Fprintf(w, "  reached %s\n", reached)
				return err
			}
			okColor.Fprintf(w, "OK")
			fmt.Fprintf(w, "  %d presses reach %s\n", sol.PressCount(), reached)

			return nil
		},
	}
	cmd.Flags().BoolVar(&indicator, "indicator", false, "Check the indicator parity instead of the target")

	return cmd
}

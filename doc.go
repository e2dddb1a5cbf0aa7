// Package lvreach solves button press-count puzzles: given a set of
// buttons, each adding 1 to a fixed subset of a small integer vector, find
// how many times to press each button so the presses add up exactly to a
// target vector.
//
// 🚀 What is inside?
//
//	vector/      Vector and Button algebra: add, subtract, halve, parity skim
//	combination/ lexicographic k-subset enumeration (pull iterator + iter.Seq)
//	scenario/    Scenario, Solution and the one-line text format
//	solver/      mask (parity) solver, ranked DFS, bisection, Solve
//	builder/     seeded random scenarios with a known solution
//	internal/    config (viper), runner (errgroup batch), telemetry (otel)
//	cmd/lvreach/ the CLI: solve, verify, generate, config
//
// Line format:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//	  │      └── buttons: dimensions each press touches
//	  └── indicator: '#' dimensions must end odd      └── target
//
// Two answers per line:
//
//   - the indicator answer presses each button at most once and reaches
//     the indicator's parity (solver.SolveMask);
//   - the target answer reaches the target exactly (solver.SolveDFS,
//     solver.SolveBisection, or solver.Solve with StrategyAuto).
//
// Quick start:
//
//	sc, _ := scenario.ParseLine("[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}")
//	sol, _ := solver.Solve(sc, solver.StrategyAuto)
//	fmt.Println(sol) // 1,2,0,4,0,3
//
//	go install github.com/katalvlaran/lvreach/cmd/lvreach@latest
package lvreach

// Package solver finds per-button press counts that drive the zero vector
// to a destination vector, given a scenario.Scenario.
//
// What:
//
//   - SolveMask: smallest subset of distinct buttons matching a parity
//     mask. Exhaustive over subset sizes 1..n-1.
//   - Rank: orders admissible buttons by squared distance to a
//     destination. Shared heuristic of the DFS walk.
//   - SolveDFS: greedy backtracking search, depth-capped by MaxPresses.
//   - SolveBisection: parity correction plus halving, with DFS fallback
//     when a parity subset overshoots.
//   - Solve: strategy dispatcher returning a verified Solution.
//
// Why:
//   - Bisection needs O(log max) levels and a handful of mask searches,
//     where DFS may need one level per press.
//   - DFS covers the cases bisection cannot decompose.
//
// Options:
//
//   - WithContext, WithStepBudget: cancellation and work bounds, checked
//     at the top of every search loop.
//   - WithMaxPresses: DFS depth cap (default DefaultMaxPresses).
//   - WithLogger: Debug records for fallbacks, gaps and mask matches.
//   - WithOnParityGap, WithStrictParity: observe or reject the bisection
//     parity gap.
//   - WithStats: accumulate search counters.
//
// Errors:
//
//   - ErrNoSolution        search exhausted; the expected miss.
//   - ErrParityGap         strict mode, no parity subset at some level.
//   - ErrStepBudget        StepBudget exhausted.
//   - ErrInsufficientCapacity  Order buffer smaller than the button count.
//   - ErrButtonNotFound    button index outside the scenario.
//   - ErrScenarioNil, ErrSolutionNil, ErrOptionViolation  caller bugs.
//
// Concurrency: every call owns its search state. Distinct goroutines may
// solve concurrently as long as they do not share Solutions or Vectors.
// Scenarios are read-only and may be shared.
package solver

// Package cost provides the movement cost model of a grid search: the step
// cost added to g for one move and the heuristic h estimating the remaining
// cost to the goal.
//
// Unit costs are run-scoped values carried by a Model, not process-wide
// constants. The defaults are 10 for a straight move and 14 for a diagonal
// one (≈ 10·√2).
//
// Heuristics:
//
//   - Manhattan:  (|dx| + |dy|) · Straight. Exact on an empty 4-connected grid.
//   - Octile:     Straight·(|dx| + |dy|) + (Diagonal − 2·Straight)·min(|dx|, |dy|).
//     Exact on an empty 8-connected grid, hence admissible and consistent.
//   - Chebyshev:  max(|dx|, |dy|) · Diagonal. Overestimates straight runs, so
//     A* may return a longer-than-optimal route with it.
//
// Orthogonal movement defaults to Manhattan, Diagonal movement to Octile.
//
// A Model is validated once by New; every method is pure and O(1).
package cost

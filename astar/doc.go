// Package astar finds shortest paths on a grid.Grid with the A* algorithm.
//
// Overview:
//
//   - A* expands cells in increasing order of f = g + h, where g is the cost
//     accumulated from the start and h is the cost.Model's estimate of the cost
//     still to pay. With an admissible, consistent h the first time the goal is
//     selected its g is minimal.
//   - The open set is an indexed binary heap keyed by (f, insertion order), so
//     equal f values leave the heap first-in first-out. A position index gives
//     O(1) membership and O(log n) decrease-key.
//   - The closed set is a dense per-cell flag plus the ordered selection history,
//     which Reconstruct walks to rebuild the route.
//   - All per-run state lives in a slice owned by the run, indexed by cell
//     index. The grid is only read, so repeated searches never see stale state.
//
// Movement and costs:
//
//   - grid.Orthogonal: 4 neighbours, step cost 10, Manhattan heuristic.
//   - grid.Diagonal:   8 neighbours, step cost 10 / 14, Octile heuristic.
//   - WithUnitCosts, WithHeuristic or WithCostModel override the defaults.
//
// Decrease-key:
//
//	By default a cheaper route to a cell that is already open replaces the
//	open entry (g, f and parent are updated in place). WithoutDecreaseKey keeps
//	the first route found instead, matching the historic behaviour of this
//	engine; on boards with several routes of different cost it can return a
//	more expensive path.
//
// Outcomes:
//
//   - Found:     Result.Found is true and Result.Path runs start → goal.
//   - Not found: Result.Found is false, Result.Path is empty, err is nil.
//   - start == goal yields a one-cell path of cost 0.
//
// Errors (sentinel):
//
//   - ErrNilGrid:              the grid pointer is nil.
//   - ErrInvalidCell:          start or goal is out of range or a wall.
//   - ErrOptionViolation:      an option or the cost model is invalid.
//   - ErrSearchExceededBudget: WithMaxExpansions was exhausted before the goal.
//   - ErrBrokenParentChain:    Reconstruct met a parent that is not closed.
//   - context errors from WithContext are returned unwrapped.
//
// Complexity:
//
//   - Time:  O(N log N), N = Width·Height; every cell is closed at most once.
//   - Space: O(N).
//
// Thread safety:
//
//	FindPath keeps all mutable state local to the call; any number of searches
//	may run over the same *grid.Grid concurrently.
package astar

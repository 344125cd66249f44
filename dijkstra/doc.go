// Package dijkstra computes exact minimal movement costs from one cell of a
// grid.Grid to every other cell, using Dijkstra's algorithm with the step
// costs of a cost.Model.
//
// Overview:
//
//   - Moves are symmetric, so the field computed from a goal cell holds the
//     true remaining cost to that goal for every cell. This is the reference
//     an A* heuristic is measured against: h is admissible iff h(c) <= Dist[c]
//     for every reachable cell c.
//   - Unreachable cells and walls keep the value Unreachable (math.MaxInt64).
//   - The runner uses a min-heap with the "lazy decrease-key" strategy:
//     improved cells are pushed again and stale entries are skipped on pop.
//
// Options:
//
//   - WithMaxDistance(d): cells whose distance would exceed d are not explored.
//
// Errors (sentinel):
//
//   - ErrNilGrid:          the grid pointer is nil.
//   - ErrSourceOutOfRange: the source index is outside the grid.
//   - ErrSourceBlocked:    the source cell is a wall.
//   - ErrBadMaxDistance:   WithMaxDistance received a negative value.
//
// Complexity:
//
//   - Time:  O(N·d·log N), N = Width·Height, d = 4 or 8.
//   - Space: O(N·d) worst case for heap entries.
package dijkstra

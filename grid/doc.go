// Package grid models a rectangular board of cells with static traversability
// and answers the adjacency questions a path search asks.
//
// What:
//
//   - Grid stores Width×Height cells in row-major order (index = y*Width + x).
//   - A cell is either traversable or blocked; this is fixed at construction.
//   - Neighbors lists the traversable cells adjacent to a cell under a Movement:
//     Orthogonal (W, E, N, S) or Diagonal (the 8 cells of the surrounding 3×3 block).
//   - ConnectedComponents, Reachable and MinBreach analyse regions of free cells.
//
// Diagonal movement applies no corner-cutting guard: a diagonal step is allowed
// even when both orthogonal cells beside it are blocked.
//
// Complexity:
//
//   - New, From2D:          O(W×H) time and memory.
//   - Neighbors:            O(d), d = 4 or 8.
//   - ConnectedComponents:  O(W×H×d), Memory: O(W×H).
//   - MinBreach:            O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrEmptyGrid:         From2D input has no rows or no columns.
//   - ErrNonRectangular:    From2D rows have differing lengths.
//   - ErrIndexOutOfRange:   a cell index lies outside the grid.
//   - ErrUnknownMovement:   ParseMovement received an unknown name.
//
// A Grid is never mutated after construction, so one Grid may be shared by
// any number of searches.
package grid

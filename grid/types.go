package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrIndexOutOfRange indicates a cell index outside [0, Width*Height).
	ErrIndexOutOfRange = errors.New("grid: cell index out of range")
	// ErrUnknownMovement indicates an unrecognised movement name.
	ErrUnknownMovement = errors.New("grid: unknown movement")
)

// Movement selects which cells count as adjacent.
type Movement int

const (
	// Orthogonal allows moves to the 4 edge-sharing cells: W, E, N, S.
	Orthogonal Movement = iota
	// Diagonal adds the 4 corner-sharing cells: NW, NE, SW, SE.
	Diagonal
)

// String returns the lower-case name of the movement.
func (m Movement) String() string {
	switch m {
	case Orthogonal:
		return "orthogonal"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("movement(%d)", int(m))
	}
}

// ParseMovement converts a name ("orthogonal", "diagonal", or the short forms
// "4" and "8") into a Movement.
func ParseMovement(s string) (Movement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "orthogonal", "ortho", "4":
		return Orthogonal, nil
	case "diagonal", "diag", "8":
		return Diagonal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMovement, s)
}

// Neighbour offsets in the order they are reported: W, E, N, S, then NW, NE, SW, SE.
var (
	orthogonalOffsets = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalOffsets   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

// Offsets returns the (dx, dy) neighbour offsets of the movement.
// The returned slice must not be modified.
func (m Movement) Offsets() [][2]int {
	if m == Diagonal {
		return diagonalOffsets
	}
	return orthogonalOffsets
}

// Cell is the static identity of one grid square.
type Cell struct {
	Index       int  // row-major index: Y*Width + X
	X, Y        int  // coordinates within the grid
	Traversable bool // false for walls
}

// Grid is a dense, row-major, immutable board of cells.
type Grid struct {
	Width, Height int
	cells         []Cell
}

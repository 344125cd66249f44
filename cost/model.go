package cost

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Model computes step costs and heuristics for one movement mode.
type Model struct {
	Mode      grid.Movement
	Straight  int       // cost of a W/E/N/S move
	Diagonal  int       // cost of a move changing both x and y
	Heuristic Heuristic // resolved kind, never Auto after New
}

// New returns a validated Model for mode with the default unit costs
// (10 straight, 14 diagonal) unless overridden by opts.
//
// Errors:
//   - ErrInvalidCost unless 0 < Straight <= Diagonal <= 2*Straight.
//   - ErrUnknownHeuristic for an undefined Heuristic value.
//   - ErrHeuristicMismatch for Manhattan with Diagonal movement.
func New(mode grid.Movement, opts ...Option) (Model, error) {
	m := Model{
		Mode:      mode,
		Straight:  DefaultStraight,
		Diagonal:  DefaultDiagonal,
		Heuristic: Auto,
	}
	for _, opt := range opts {
		opt(&m)
	}

	if m.Straight <= 0 || m.Diagonal < m.Straight || m.Diagonal > 2*m.Straight {
		return Model{}, fmt.Errorf("%w: straight=%d diagonal=%d", ErrInvalidCost, m.Straight, m.Diagonal)
	}
	switch m.Heuristic {
	case Auto:
		m.Heuristic = Manhattan
		if mode == grid.Diagonal {
			m.Heuristic = Octile
		}
	case Manhattan:
		if mode == grid.Diagonal {
			return Model{}, fmt.Errorf("%w: %s with %s movement", ErrHeuristicMismatch, m.Heuristic, mode)
		}
	case Octile, Chebyshev:
	default:
		return Model{}, fmt.Errorf("%w: %s", ErrUnknownHeuristic, m.Heuristic)
	}

	return m, nil
}

// MustNew is like New but panics on error. Intended for package-level
// defaults and tests.
func MustNew(mode grid.Movement, opts ...Option) Model {
	m, err := New(mode, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// H estimates the remaining cost from one cell to the goal cell.
// A non-traversable cell has no estimate and yields 0.
func (m Model) H(from, goal grid.Cell) int {
	if !from.Traversable {
		return 0
	}
	return m.Distance(from.X, from.Y, goal.X, goal.Y)
}

// Distance applies the heuristic to raw coordinates.
func (m Model) Distance(x1, y1, x2, y2 int) int {
	dx, dy := abs(x1-x2), abs(y1-y2)
	switch m.Heuristic {
	case Octile:
		return m.Straight*(dx+dy) + (m.Diagonal-2*m.Straight)*min(dx, dy)
	case Chebyshev:
		return max(dx, dy) * m.Diagonal
	default:
		return (dx + dy) * m.Straight
	}
}

// Step returns the g increment for moving between two adjacent cells:
// Diagonal when both x and y differ, Straight otherwise.
func (m Model) Step(from, to grid.Cell) int {
	if from.X != to.X && from.Y != to.Y {
		return m.Diagonal
	}
	return m.Straight
}

// Admissible reports whether the heuristic never overestimates the true
// remaining cost under the model's movement.
func (m Model) Admissible() bool {
	switch m.Heuristic {
	case Manhattan:
		return m.Mode == grid.Orthogonal
	case Octile:
		return true
	case Chebyshev:
		// max·Diagonal <= octile only when diagonal moves cost no more than straight ones.
		return m.Diagonal == m.Straight
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

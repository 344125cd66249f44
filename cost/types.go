package cost

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for cost model construction.
var (
	// ErrInvalidCost indicates unit costs outside 0 < Straight <= Diagonal <= 2*Straight.
	ErrInvalidCost = errors.New("cost: unit costs must satisfy 0 < straight <= diagonal <= 2*straight")
	// ErrUnknownHeuristic indicates an unrecognised heuristic kind or name.
	ErrUnknownHeuristic = errors.New("cost: unknown heuristic")
	// ErrHeuristicMismatch indicates a heuristic that cannot serve the movement
	// (Manhattan overestimates diagonal moves).
	ErrHeuristicMismatch = errors.New("cost: heuristic does not fit movement")
)

// Default unit costs.
const (
	DefaultStraight = 10
	DefaultDiagonal = 14
)

// Heuristic names the distance estimate used for h.
type Heuristic int

const (
	// Auto picks Manhattan for Orthogonal and Octile for Diagonal movement.
	Auto Heuristic = iota
	// Manhattan is (|dx|+|dy|)·Straight.
	Manhattan
	// Octile is the exact empty-board cost of 8-directional movement.
	Octile
	// Chebyshev is max(|dx|,|dy|)·Diagonal.
	Chebyshev
)

// String returns the lower-case name of the heuristic.
func (h Heuristic) String() string {
	switch h {
	case Auto:
		return "auto"
	case Manhattan:
		return "manhattan"
	case Octile:
		return "octile"
	case Chebyshev:
		return "chebyshev"
	default:
		return fmt.Sprintf("heuristic(%d)", int(h))
	}
}

// ParseHeuristic converts a heuristic name into a Heuristic.
func ParseHeuristic(s string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "manhattan":
		return Manhattan, nil
	case "octile":
		return Octile, nil
	case "chebyshev":
		return Chebyshev, nil
	}
	return Auto, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}

// Option configures a Model built by New.
type Option func(*Model)

// WithUnitCosts overrides the straight and diagonal step costs.
func WithUnitCosts(straight, diagonal int) Option {
	return func(m *Model) {
		m.Straight = straight
		m.Diagonal = diagonal
	}
}

// WithHeuristic selects the heuristic kind; Auto keeps the movement default.
func WithHeuristic(h Heuristic) Option {
	return func(m *Model) {
		m.Heuristic = h
	}
}

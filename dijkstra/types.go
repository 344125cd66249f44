package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by DistanceField.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrSourceOutOfRange indicates a source index outside the grid.
	ErrSourceOutOfRange = errors.New("dijkstra: source cell out of range")

	// ErrSourceBlocked indicates that the source cell is not traversable.
	ErrSourceBlocked = errors.New("dijkstra: source cell is not traversable")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance of a cell that cannot be reached.
const Unreachable int64 = math.MaxInt64

// Options configures DistanceField.
//
// MaxDistance – cap on distances to explore; default math.MaxInt64 (no cap).
type Options struct {
	MaxDistance int64

	err error
}

// Option represents a functional option for configuring DistanceField.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt64}
}

// WithMaxDistance stops exploration at distance max.
// A negative max is recorded and reported as ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// Field holds the result of DistanceField.
type Field struct {
	Source int
	// Dist[i] is the minimal cost from Source to cell i, or Unreachable.
	Dist []int64
	// Prev[i] is the predecessor of i on one cheapest route, -1 for Source and
	// unreached cells.
	Prev []int
}

// Reached reports whether cell i has a finite distance.
func (f *Field) Reached(i int) bool {
	return i >= 0 && i < len(f.Dist) && f.Dist[i] != Unreachable
}

// PathTo rebuilds the cheapest route Source → dest, or nil if dest was not reached.
func (f *Field) PathTo(dest int) []int {
	if !f.Reached(dest) {
		return nil
	}
	var path []int
	for at := dest; at >= 0; at = f.Prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

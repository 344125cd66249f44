package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Grid.
	ErrNilGrid = errors.New("render: grid is nil")

	// ErrCellOutOfRange indicates a route index outside the grid.
	ErrCellOutOfRange = errors.New("render: route cell out of range")
)

const cellWidth = 3

// Options holds the glyphs used by Grid.
type Options struct {
	Route rune
	Free  rune
	Wall  rune

	// Start and Goal replace Route on the first and last route cell when
	// MarkEnds is set.
	Start    rune
	Goal     rune
	MarkEnds bool
}

// Option configures Grid.
type Option func(*Options)

// DefaultOptions returns the glyph set ●, -, █ without endpoint marks.
func DefaultOptions() Options {
	return Options{
		Route: '●',
		Free:  '-',
		Wall:  '█',
		Start: 'S',
		Goal:  'G',
	}
}

// WithGlyphs replaces the route, free and wall glyphs.
func WithGlyphs(route, free, wall rune) Option {
	return func(o *Options) {
		o.Route, o.Free, o.Wall = route, free, wall
	}
}

// WithEndpoints marks the first route cell with start and the last with goal.
func WithEndpoints(start, goal rune) Option {
	return func(o *Options) {
		o.Start, o.Goal = start, goal
		o.MarkEnds = true
	}
}

// Grid writes g to w, one line per row, highlighting the cells of route.
// route may be empty; its indices must be inside g.
func Grid(w io.Writer, g *grid.Grid, route []int, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	glyphs := make([]rune, g.Len())
	for i := range glyphs {
		if g.Walkable(i) {
			glyphs[i] = o.Free
		} else {
			glyphs[i] = o.Wall
		}
	}
	for _, idx := range route {
		if !g.Contains(idx) {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrCellOutOfRange, idx, g.Len())
		}
		glyphs[idx] = o.Route
	}
	if o.MarkEnds && len(route) > 0 {
		glyphs[route[0]] = o.Start
		glyphs[route[len(route)-1]] = o.Goal
	}

	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			fmt.Fprintf(&sb, "%-*c", cellWidth, glyphs[g.Index(x, y)])
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(sb.String(), " ")); err != nil {
			return err
		}
	}

	return nil
}

// Summary writes the route and its cost:
//
//	Path: 42 -> 43 -> ... -> 6
//	Cost: 140
//
// or "Path: none" when res is nil or the goal was not found.
func Summary(w io.Writer, res *astar.Result) error {
	if res == nil || !res.Found {
		_, err := fmt.Fprintln(w, "Path: none")
		return err
	}

	parts := make([]string, len(res.Path))
	for i, c := range res.Path {
		parts[i] = fmt.Sprint(c.Index)
	}
	_, err := fmt.Fprintf(w, "Path: %s\nCost: %d\n", strings.Join(parts, " -> "), res.Cost)
	return err
}

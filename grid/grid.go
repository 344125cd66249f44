package grid

import (
	"fmt"
	"math"
)

// maxCells bounds W×H so that the product and the cell slice size stay
// representable.
const maxCells = math.MaxInt >> 6

// New builds a width×height grid in row-major order. Every index listed in
// blocked becomes a wall; indices outside the grid are ignored.
// Returns ErrInvalidDimensions if width or height is not positive, or if
// width×height exceeds the addressable cell count.
// Complexity: O(W×H + len(blocked)) time, O(W×H) memory.
func New(width, height int, blocked []int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if width > maxCells/height {
		return nil, fmt.Errorf("%w: %d×%d cells overflow", ErrInvalidDimensions, width, height)
	}
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			g.cells[i] = Cell{Index: i, X: x, Y: y, Traversable: true}
		}
	}
	for _, i := range blocked {
		if i >= 0 && i < len(g.cells) {
			g.cells[i].Traversable = false
		}
	}

	return g, nil
}

// From2D builds a grid from a non-empty rectangular matrix, values[y][x].
// A zero value is free floor; any other value is a wall.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func From2D(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	var blocked []int
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, v := range row {
			if v != 0 {
				blocked = append(blocked, y*w+x)
			}
		}
	}

	return New(w, h, blocked)
}

// Len returns the number of cells, Width*Height.
func (g *Grid) Len() int {
	return len(g.cells)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// The result is only meaningful when InBounds(x, y).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Contains reports whether idx addresses a cell of the grid.
func (g *Grid) Contains(idx int) bool {
	return idx >= 0 && idx < len(g.cells)
}

// Cell returns the cell at idx; ok is false when idx is out of range.
func (g *Grid) Cell(idx int) (c Cell, ok bool) {
	if !g.Contains(idx) {
		return Cell{}, false
	}
	return g.cells[idx], true
}

// Walkable reports whether idx is inside the grid and traversable.
func (g *Grid) Walkable(idx int) bool {
	return g.Contains(idx) && g.cells[idx].Traversable
}

// Blocked returns the indices of all walls in ascending order.
func (g *Grid) Blocked() []int {
	var out []int
	for _, c := range g.cells {
		if !c.Traversable {
			out = append(out, c.Index)
		}
	}
	return out
}

// Neighbors returns the traversable cells adjacent to idx under mode, in the
// order W, E, N, S, NW, NE, SW, SE. Out-of-bounds and blocked cells are
// filtered out. An index outside the grid has no neighbours.
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Neighbors(idx int, mode Movement) []int {
	if !g.Contains(idx) {
		return nil
	}
	x, y := g.Coordinate(idx)
	offsets := mode.Offsets()
	out := make([]int, 0, len(offsets))
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		n := g.Index(nx, ny)
		if g.cells[n].Traversable {
			out = append(out, n)
		}
	}

	return out
}

// Adjacent reports whether b is one move away from a under mode.
// Traversability is not considered.
func (g *Grid) Adjacent(a, b int, mode Movement) bool {
	if !g.Contains(a) || !g.Contains(b) || a == b {
		return false
	}
	ax, ay := g.Coordinate(a)
	bx, by := g.Coordinate(b)
	dx, dy := abs(ax-bx), abs(ay-by)
	if dx > 1 || dy > 1 {
		return false
	}
	if mode == Orthogonal {
		return dx+dy == 1
	}
	return true
}

// IsDiagonalStep reports whether moving from a to b changes both x and y.
func (g *Grid) IsDiagonalStep(a, b int) bool {
	ax, ay := g.Coordinate(a)
	bx, by := g.Coordinate(b)
	return ax != bx && ay != by
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

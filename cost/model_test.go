package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/grid"
)

func cell(x, y int) grid.Cell {
	return grid.Cell{X: x, Y: y, Traversable: true}
}

func TestNew_Defaults(t *testing.T) {
	m, err := cost.New(grid.Orthogonal)
	require.NoError(t, err)
	assert.Equal(t, 10, m.Straight)
	assert.Equal(t, 14, m.Diagonal)
	assert.Equal(t, cost.Manhattan, m.Heuristic)
	assert.True(t, m.Admissible())

	m, err = cost.New(grid.Diagonal)
	require.NoError(t, err)
	assert.Equal(t, cost.Octile, m.Heuristic)
	assert.True(t, m.Admissible())
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name string
		mode grid.Movement
		opts []cost.Option
		want error
	}{
		{"zero straight", grid.Orthogonal, []cost.Option{cost.WithUnitCosts(0, 0)}, cost.ErrInvalidCost},
		{"diagonal cheaper than straight", grid.Diagonal, []cost.Option{cost.WithUnitCosts(10, 9)}, cost.ErrInvalidCost},
		{"diagonal dearer than two straights", grid.Diagonal, []cost.Option{cost.WithUnitCosts(10, 21)}, cost.ErrInvalidCost},
		{"manhattan with diagonal", grid.Diagonal, []cost.Option{cost.WithHeuristic(cost.Manhattan)}, cost.ErrHeuristicMismatch},
		{"undefined heuristic", grid.Orthogonal, []cost.Option{cost.WithHeuristic(cost.Heuristic(42))}, cost.ErrUnknownHeuristic},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cost.New(tc.mode, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Panics(t, func() { cost.MustNew(grid.Orthogonal, cost.WithUnitCosts(-1, 1)) })
}

func TestH(t *testing.T) {
	goal := cell(6, 0)
	start := cell(0, 6)

	ortho := cost.MustNew(grid.Orthogonal)
	assert.Equal(t, 120, ortho.H(start, goal), "(6+6)*10")

	octile := cost.MustNew(grid.Diagonal)
	assert.Equal(t, 84, octile.H(start, goal), "6 diagonal moves")
	assert.Equal(t, 20, octile.H(cell(0, 0), cell(2, 0)))
	assert.Equal(t, 34, octile.H(cell(0, 0), cell(3, 1)), "14 + 2*10")

	cheb := cost.MustNew(grid.Diagonal, cost.WithHeuristic(cost.Chebyshev))
	assert.Equal(t, 84, cheb.H(start, goal))
	assert.Equal(t, 28, cheb.H(cell(0, 0), cell(2, 0)), "overestimates a straight run of 20")
	assert.False(t, cheb.Admissible())

	wall := grid.Cell{X: 3, Y: 3}
	assert.Zero(t, ortho.H(wall, goal))
	assert.Zero(t, octile.H(goal, goal))
}

func TestStep(t *testing.T) {
	m := cost.MustNew(grid.Diagonal, cost.WithUnitCosts(2, 3))
	assert.Equal(t, 2, m.Step(cell(1, 1), cell(2, 1)))
	assert.Equal(t, 2, m.Step(cell(1, 1), cell(1, 0)))
	assert.Equal(t, 3, m.Step(cell(1, 1), cell(0, 0)))
	assert.Equal(t, 3, m.Step(cell(1, 1), cell(2, 2)))
}

func TestAdmissible_Chebyshev(t *testing.T) {
	uniform := cost.MustNew(grid.Diagonal, cost.WithUnitCosts(1, 1), cost.WithHeuristic(cost.Chebyshev))
	assert.True(t, uniform.Admissible())
	assert.Equal(t, 5, uniform.Distance(0, 0, 5, 3))
}

func TestParseHeuristic(t *testing.T) {
	for name, want := range map[string]cost.Heuristic{
		"":          cost.Auto,
		"Octile":    cost.Octile,
		"manhattan": cost.Manhattan,
		"chebyshev": cost.Chebyshev,
	} {
		got, err := cost.ParseHeuristic(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got)
	}
	_, err := cost.ParseHeuristic("euclid")
	assert.ErrorIs(t, err, cost.ErrUnknownHeuristic)
	assert.Equal(t, "octile", cost.Octile.String())
	assert.Equal(t, "heuristic(9)", cost.Heuristic(9).String())
}

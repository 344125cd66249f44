package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
)

func TestReconstruct_Chain(t *testing.T) {
	closed := []astar.Node{
		{Index: 0, Parent: astar.NoParent},
		{Index: 1, Parent: 0, G: 10},
		{Index: 5, Parent: 1, G: 20},
		{Index: 2, Parent: 1, G: 20},
	}
	path, err := astar.Reconstruct(closed, closed[3])
	require.NoError(t, err)
	assert.Equal(t, []astar.Node{closed[0], closed[1], closed[3]}, path)
}

func TestReconstruct_StartOnly(t *testing.T) {
	start := astar.Node{Index: 7, Parent: astar.NoParent}
	path, err := astar.Reconstruct([]astar.Node{start}, start)
	require.NoError(t, err)
	assert.Equal(t, []astar.Node{start}, path)
}

// The goal itself need not be in closed, only its ancestors.
func TestReconstruct_GoalOutsideClosed(t *testing.T) {
	closed := []astar.Node{{Index: 3, Parent: astar.NoParent}}
	path, err := astar.Reconstruct(closed, astar.Node{Index: 4, Parent: 3})
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, 3, path[0].Index)
	assert.Equal(t, 4, path[1].Index)
}

func TestReconstruct_MissingParent(t *testing.T) {
	closed := []astar.Node{
		{Index: 0, Parent: astar.NoParent},
		{Index: 2, Parent: 1},
	}
	path, err := astar.Reconstruct(closed, closed[1])
	assert.Nil(t, path)
	assert.ErrorIs(t, err, astar.ErrBrokenParentChain)
}

func TestReconstruct_Cycle(t *testing.T) {
	closed := []astar.Node{
		{Index: 1, Parent: 2},
		{Index: 2, Parent: 1},
	}
	path, err := astar.Reconstruct(closed, closed[0])
	assert.Nil(t, path)
	assert.ErrorIs(t, err, astar.ErrBrokenParentChain)
}

package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// randomBoard returns an n×n grid where roughly one cell in four is a wall.
func randomBoard(b *testing.B, n int) *grid.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	var walls []int
	for i := 0; i < n*n; i++ {
		if r.Intn(4) == 0 {
			walls = append(walls, i)
		}
	}
	g, err := grid.New(n, n, walls)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	return g
}

// BenchmarkConnectedComponents measures region discovery on a 1000×1000 board.
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomBoard(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents(grid.Diagonal)
	}
}

// BenchmarkMinBreach measures the 0-1 BFS between opposite corners.
func BenchmarkMinBreach(b *testing.B) {
	g := randomBoard(b, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.MinBreach(0, g.Len()-1, grid.Orthogonal)
	}
}

package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// benchGrid builds an n×n board with ~20% walls, keeping both corners free.
func benchGrid(b *testing.B, n int) *grid.Grid {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	var walls []int
	for i := 1; i < n*n-1; i++ {
		if r.Intn(5) == 0 {
			walls = append(walls, i)
		}
	}
	g, err := grid.New(n, n, walls)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	return g
}

// BenchmarkFindPath_Orthogonal measures a corner-to-corner search on 256×256.
// Complexity: O(N log N), N = 65536.
func BenchmarkFindPath_Orthogonal(b *testing.B) {
	g := benchGrid(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(g, 0, g.Len()-1, grid.Orthogonal)
	}
}

// BenchmarkFindPath_Diagonal is the 8-connected variant of the benchmark above.
func BenchmarkFindPath_Diagonal(b *testing.B) {
	g := benchGrid(b, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = astar.FindPath(g, 0, g.Len()-1, grid.Diagonal)
	}
}

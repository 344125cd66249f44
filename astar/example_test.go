package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleFindPath routes across the 7×7 reference board from the bottom-left
// corner (42) to the top-right corner (6) with both movement modes.
func ExampleFindPath() {
	g, _ := grid.New(7, 7, []int{5, 10, 12, 17, 19, 26, 31, 38, 40, 45, 47})

	for _, mode := range []grid.Movement{grid.Orthogonal, grid.Diagonal} {
		res, err := astar.FindPath(g, 42, 6, mode)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: %v cost=%d\n", mode, res.Indices(), res.Cost)
	}
	// Output:
	// orthogonal: [42 43 44 37 30 23 24 25 32 33 34 27 20 13 6] cost=140
	// diagonal: [42 36 30 24 25 33 27 20 13 6] cost=110
}

// ExampleFindPath_noPath shows that an unreachable goal is a normal outcome.
func ExampleFindPath_noPath() {
	g, _ := grid.From2D([][]int{
		{0, 1, 0},
		{1, 1, 0},
		{0, 0, 0},
	})
	res, err := astar.FindPath(g, 0, 8, grid.Diagonal)
	fmt.Println(res.Found, len(res.Path), err)
	// Output:
	// false 0 <nil>
}

// Package dijkstra_test provides examples demonstrating the grid distance field.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
)

// ExampleDistanceField prints the exact remaining cost to the top-right goal
// for every cell of a small board ("##" marks a wall).
//
//	. . .
//	. # .
//	. . .
func ExampleDistanceField() {
	g, _ := grid.From2D([][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	f, err := dijkstra.DistanceField(g, 2, cost.MustNew(grid.Orthogonal))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for y := 0; y < g.Height; y++ {
		row := make([]string, 0, g.Width)
		for x := 0; x < g.Width; x++ {
			i := g.Index(x, y)
			if !f.Reached(i) {
				row = append(row, "##")
				continue
			}
			row = append(row, fmt.Sprintf("%2d", f.Dist[i]))
		}
		fmt.Println(strings.Join(row, " "))
	}
	// Output:
	// 20 10  0
	// 30 ## 10
	// 40 30 20
}

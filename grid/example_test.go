package grid_test

import (
	"fmt"

	"github.com/katalvlaran/happycube/grid"
)

// ExampleGrid_RotateClockwise turns a 3×3 grid a quarter turn clockwise:
// the left column becomes the top row.
func ExampleGrid_RotateClockwise() {
	g := grid.MustNew([][]int{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	for _, row := range g.RotateClockwise().Cells() {
		fmt.Println(row)
	}

	// Output:
	// [7 4 1]
	// [8 5 2]
	// [9 6 3]
}

// ExampleGrid_ConnectedComponents lists the regions of a grid with an
// isolated corner cell.
func ExampleGrid_ConnectedComponents() {
	g := grid.MustNew([][]int{
		{1, 0, 1},
		{0, 1, 1},
		{0, 1, 0},
	})
	for i, comp := range g.ConnectedComponents(grid.Conn4) {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			r, c := g.Coordinate(idx)
			fmt.Printf(" (%d,%d)", r, c)
		}
		fmt.Println()
	}

	// Output:
	// component 0: (0,0)
	// component 1: (0,2) (1,2) (1,1) (2,1)
}

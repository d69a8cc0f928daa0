package render_test

import (
	"fmt"

	"github.com/katalvlaran/happycube/render"
)

func ExampleText() {
	cells := [][]int{
		{1, 0, 1},
		{1, 1, 1},
		{1, 0, 1},
	}
	fmt.Println(render.Text(cells, render.WithEmpty(".")))

	// Output:
	// @.@
	// @@@
	// @.@
}

package piece_test

import (
	"fmt"

	"github.com/katalvlaran/happycube/piece"
	"github.com/katalvlaran/happycube/render"
)

// ExampleParse builds a piece from its edge code and prints its edges.
func ExampleParse() {
	p, err := piece.Parse("0101001000101101")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(render.Text(p.Grid(), render.WithEmpty(".")))
	for _, d := range piece.EdgeDirections {
		fmt.Printf("%-6s %v\n", d, p.Edge(d))
	}

	// Output:
	// .@.@.
	// @@@@.
	// .@@@@
	// @@@@.
	// @.@..
	// top    [0 1 0 1 0]
	// right  [0 0 1 0 0]
	// bottom [1 0 1 0 0]
	// left   [0 1 0 1 1]
}

// ExampleTransform flips a piece over and turns it a quarter clockwise.
func ExampleTransform() {
	p := piece.MustNew([]int{0, 1, 0, 1, 0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 0, 1})
	tp := piece.Transform(p, 1, true)
	fmt.Println(render.Text(tp.Grid(), render.WithEmpty(".")))

	// Output:
	// ..@..
	// .@@@@
	// @@@@.
	// .@@@@
	// @@.@.
}

// ExampleNew_invalid shows the error returned for a short edge code.
func ExampleNew_invalid() {
	_, err := piece.New([]int{0, 1, 0})
	fmt.Println(err)

	// Output:
	// piece: invalid piece: edge code has 3 values, must be 16
}

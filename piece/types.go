// SPDX-License-Identifier: MIT

package piece

import "fmt"

const (
	// Size is the side length of a piece grid.
	Size = 5
	// EdgeLength is the number of boundary cells in an edge code.
	EdgeLength = 16

	// Gap and Filled are the two binary cell values.
	Gap    = 0
	Filled = 1
)

// EdgeDirection names one side of a piece.
type EdgeDirection int

const (
	Top EdgeDirection = iota
	Right
	Bottom
	Left
)

// EdgeDirections lists all sides in clockwise order starting at Top.
var EdgeDirections = [...]EdgeDirection{Top, Right, Bottom, Left}

func (d EdgeDirection) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("EdgeDirection(%d)", int(d))
}

// CornerDirection names one corner of a piece.
type CornerDirection int

const (
	TopLeft CornerDirection = iota
	TopRight
	BottomRight
	BottomLeft
)

// CornerDirections lists all corners in clockwise order starting at TopLeft.
var CornerDirections = [...]CornerDirection{TopLeft, TopRight, BottomRight, BottomLeft}

func (c CornerDirection) String() string {
	switch c {
	case TopLeft:
		return "top_left"
	case TopRight:
		return "top_right"
	case BottomRight:
		return "bottom_right"
	case BottomLeft:
		return "bottom_left"
	}
	return fmt.Sprintf("CornerDirection(%d)", int(c))
}

// Ends returns the corners at the start and end of edge d, in the edge's
// reading order (left to right, or top to bottom).
func (d EdgeDirection) Ends() (first, last CornerDirection) {
	switch d {
	case Top:
		return TopLeft, TopRight
	case Right:
		return TopRight, BottomRight
	case Bottom:
		return BottomLeft, BottomRight
	case Left:
		return TopLeft, BottomLeft
	}
	panic(fmt.Sprintf("piece: unknown %v", d))
}

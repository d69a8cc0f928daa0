// SPDX-License-Identifier: MIT

package piece

import (
	"fmt"

	"github.com/katalvlaran/happycube/grid"
)

// Transformed is a read-only rotated and/or mirrored view of a Piece.
// The grid is derived once at construction; the source is never modified.
type Transformed struct {
	source   *Piece
	rotation int
	mirrored bool
	g        *grid.Grid
}

// Transform derives a view of p. When mirrored is true every row is
// reversed first; then rotation clockwise quarter turns are applied.
// rotation is taken modulo 4.
func Transform(p *Piece, rotation int, mirrored bool) *Transformed {
	g := p.g
	if mirrored {
		g = g.Mirror()
	}
	rotation = grid.NormalizeSteps(rotation)

	return &Transformed{
		source:   p,
		rotation: rotation,
		mirrored: mirrored,
		g:        g.Rotate(rotation),
	}
}

// Orientations returns the eight views of p: rotations 0..3 unmirrored,
// followed by rotations 0..3 mirrored.
func Orientations(p *Piece) []*Transformed {
	out := make([]*Transformed, 0, 8)
	for _, mirrored := range []bool{false, true} {
		for r := 0; r < 4; r++ {
			out = append(out, Transform(p, r, mirrored))
		}
	}
	return out
}

// Source returns the piece this view was derived from.
func (t *Transformed) Source() *Piece { return t.source }

// Rotation returns the number of clockwise quarter turns, in [0, 4).
func (t *Transformed) Rotation() int { return t.rotation }

// Mirrored reports whether the piece was flipped before rotating.
func (t *Transformed) Mirrored() bool { return t.mirrored }

// Grid returns a copy of the derived 5×5 grid.
func (t *Transformed) Grid() [][]int {
	return t.g.Cells()
}

// Edge returns the five boundary values along side d of the derived grid,
// using the same reading order as Piece.Edge.
func (t *Transformed) Edge(d EdgeDirection) []int {
	switch d {
	case Top:
		return t.g.Row(0)
	case Right:
		return t.g.Column(Size - 1)
	case Bottom:
		return t.g.Row(Size - 1)
	case Left:
		return t.g.Column(0)
	}
	panic(fmt.Sprintf("piece: unknown %v", d))
}

// Corner returns the value at corner c of the derived grid.
func (t *Transformed) Corner(c CornerDirection) int {
	var row, col int
	switch c {
	case TopLeft:
	case TopRight:
		col = Size - 1
	case BottomRight:
		row, col = Size-1, Size-1
	case BottomLeft:
		row = Size - 1
	default:
		panic(fmt.Sprintf("piece: unknown %v", c))
	}
	v, _ := t.g.At(row, col)
	return v
}

// Equal reports whether t and other present the same grid.
func (t *Transformed) Equal(other *Transformed) bool {
	if other == nil {
		return false
	}
	return t.g.Equal(other.g)
}

func (t *Transformed) String() string {
	return fmt.Sprintf("%s/r%d/m%t", t.source, t.rotation, t.mirrored)
}

// SPDX-License-Identifier: MIT

package piece

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/happycube/grid"
)

// Piece is a 5×5 puzzle piece derived from an edge code. It is immutable.
type Piece struct {
	code []int
	g    *grid.Grid
}

// New builds a Piece from a 16-value edge code read clockwise from the
// top-left corner. The code is copied.
// Returns ErrInvalidPiece if code is nil or its length is not EdgeLength.
// Values outside {0,1} are stored unchanged unless WithStrictCells is given.
func New(code []int, opts ...Option) (*Piece, error) {
	if code == nil {
		return nil, fmt.Errorf("%w: edge code cannot be nil", ErrInvalidPiece)
	}
	if len(code) != EdgeLength {
		return nil, fmt.Errorf("%w: edge code has %d values, must be %d", ErrInvalidPiece, len(code), EdgeLength)
	}
	cfg := newConfig(opts)
	if cfg.strict {
		for i, v := range code {
			if v != Gap && v != Filled {
				return nil, fmt.Errorf("%w: edge[%d]=%d: %w", ErrInvalidPiece, i, v, ErrInvalidCell)
			}
		}
	}

	c := make([]int, EdgeLength)
	copy(c, code)

	return &Piece{code: c, g: grid.MustNew(layout(c))}, nil
}

// MustNew is like New but panics on error. Intended for fixed literals.
func MustNew(code []int, opts ...Option) *Piece {
	p, err := New(code, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse builds a Piece from a string of 16 digits such as
// "0101001000101101". Whitespace, '_' and '-' are ignored so codes can be
// grouped for readability ("01010 010 00101 101"). Any digit is accepted
// and stored as its value, as New does; pass WithStrictCells to reject
// digits other than 0 and 1.
func Parse(s string, opts ...Option) (*Piece, error) {
	code := make([]int, 0, EdgeLength)
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			code = append(code, int(r-'0'))
		case r == ' ' || r == '\t' || r == '\n' || r == '_' || r == '-':
			continue
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrInvalidPiece, r, i)
		}
	}
	return New(code, opts...)
}

// Blank returns the piece whose border is entirely gaps: just the 3×3 center.
func Blank() *Piece {
	return MustNew(make([]int, EdgeLength))
}

// layout places the edge code around the filled 3×3 center.
func layout(e []int) [][]int {
	return [][]int{
		{e[0], e[1], e[2], e[3], e[4]},
		{e[15], Filled, Filled, Filled, e[5]},
		{e[14], Filled, Filled, Filled, e[6]},
		{e[13], Filled, Filled, Filled, e[7]},
		{e[12], e[11], e[10], e[9], e[8]},
	}
}

// Code returns a copy of the edge code.
func (p *Piece) Code() []int {
	out := make([]int, EdgeLength)
	copy(out, p.code)
	return out
}

// Grid returns a copy of the 5×5 cell grid, rows top to bottom.
func (p *Piece) Grid() [][]int {
	return p.g.Cells()
}

// Edge returns the five boundary values along side d.
// Top and Bottom read left to right; Left and Right read top to bottom.
// Panics on an undefined direction.
func (p *Piece) Edge(d EdgeDirection) []int {
	e := p.code
	switch d {
	case Top:
		return []int{e[0], e[1], e[2], e[3], e[4]}
	case Right:
		return []int{e[4], e[5], e[6], e[7], e[8]}
	case Bottom:
		return []int{e[12], e[11], e[10], e[9], e[8]}
	case Left:
		return []int{e[0], e[15], e[14], e[13], e[12]}
	}
	panic(fmt.Sprintf("piece: unknown %v", d))
}

// Corner returns the value at corner c. Panics on an undefined corner.
func (p *Piece) Corner(c CornerDirection) int {
	switch c {
	case TopLeft:
		return p.code[0]
	case TopRight:
		return p.code[4]
	case BottomRight:
		return p.code[8]
	case BottomLeft:
		return p.code[12]
	}
	panic(fmt.Sprintf("piece: unknown %v", c))
}

// Connected reports whether the filled cells form a single orthogonally
// connected region. A filled corner whose two neighbours are gaps would
// fall off the piece.
func (p *Piece) Connected() bool {
	return len(p.g.ConnectedComponents(grid.Conn4)) == 1
}

// Area counts the filled cells of the piece, center included.
func (p *Piece) Area() int {
	return p.g.Filled()
}

// String returns the edge code as digits, e.g. "0101001000101101".
func (p *Piece) String() string {
	var b strings.Builder
	b.Grow(EdgeLength)
	for _, v := range p.code {
		fmt.Fprint(&b, v)
	}
	return b.String()
}

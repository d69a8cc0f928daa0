// SPDX-License-Identifier: MIT

package grid

import "fmt"

// New constructs a Grid from a non-empty, square 2D slice.
// It deep-copies the input so later changes to values do not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonSquare if any row length differs from the number of rows.
// Complexity: O(n²) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(values)
	for i, row := range values {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}

	return &Grid{n: n, cells: copyCells(values)}, nil
}

// MustNew is like New but panics on error. Intended for fixed literals.
func MustNew(values [][]int) *Grid {
	g, err := New(values)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the side length n.
func (g *Grid) Size() int { return g.n }

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// At returns the value stored at (row, col), or ErrOutOfRange.
func (g *Grid) At(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return g.cells[row][col], nil
}

// Cells returns a deep copy of the underlying rows.
func (g *Grid) Cells() [][]int {
	return copyCells(g.cells)
}

// Row returns a copy of row i, or nil when i is out of range.
func (g *Grid) Row(i int) []int {
	if i < 0 || i >= g.n {
		return nil
	}
	out := make([]int, g.n)
	copy(out, g.cells[i])
	return out
}

// Column returns a copy of column j read top to bottom, or nil when j is out of range.
func (g *Grid) Column(j int) []int {
	if j < 0 || j >= g.n {
		return nil
	}
	out := make([]int, g.n)
	for i := 0; i < g.n; i++ {
		out[i] = g.cells[i][j]
	}
	return out
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{n: g.n, cells: copyCells(g.cells)}
}

// Equal reports whether g and other have the same size and cell values.
// Two nil grids are equal.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.n != other.n {
		return false
	}
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if g.cells[i][j] != other.cells[i][j] {
				return false
			}
		}
	}
	return true
}

// index maps (row, col) to a row-major index: row*n + col.
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return row*g.n + col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.n, idx % g.n
}

func copyCells(values [][]int) [][]int {
	out := make([][]int, len(values))
	for i, row := range values {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}

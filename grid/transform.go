// SPDX-License-Identifier: MIT

package grid

// RotateClockwise returns g turned 90° clockwise.
// For all i, j in [0, n): out[i][j] = g[n-1-j][i].
// Complexity: O(n²) time and memory.
func (g *Grid) RotateClockwise() *Grid {
	n := g.n
	out := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		out[i] = make([]int, n)
		for j = 0; j < n; j++ {
			out[i][j] = g.cells[n-1-j][i]
		}
	}
	return &Grid{n: n, cells: out}
}

// Rotate applies steps clockwise quarter turns. steps is taken modulo 4,
// so -1 is one counter-clockwise turn and 4 is the identity.
// The result is always a new Grid, even for zero steps.
func (g *Grid) Rotate(steps int) *Grid {
	steps = NormalizeSteps(steps)
	out := g.Clone()
	for k := 0; k < steps; k++ {
		out = out.RotateClockwise()
	}
	return out
}

// Mirror returns g with the cell order of every row reversed (left-right flip).
// Row order is unchanged.
func (g *Grid) Mirror() *Grid {
	n := g.n
	out := make([][]int, n)
	for i := 0; i < n; i++ {
		out[i] = make([]int, n)
		for j := 0; j < n; j++ {
			out[i][j] = g.cells[i][n-1-j]
		}
	}
	return &Grid{n: n, cells: out}
}

// NormalizeSteps maps any integer onto the quarter-turn range [0, 4).
func NormalizeSteps(steps int) int {
	steps %= 4
	if steps < 0 {
		steps += 4
	}
	return steps
}

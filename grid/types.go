// SPDX-License-Identifier: MIT

package grid

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// offsets returns the (row, col) neighbor deltas for c.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	}
	return [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
}

// Grid is an immutable n×n cell matrix.
// cells[row][col] holds the value supplied at construction.
type Grid struct {
	n     int
	cells [][]int
}

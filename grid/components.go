// SPDX-License-Identifier: MIT

package grid

// ConnectedComponents finds all contiguous regions of filled cells
// (value ≥ 1) under the given connectivity.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in BFS discovery order. Components are ordered by the
// row-major position of their first cell.
//
// To convert an index back to (row, col), use Coordinate(idx).
//
// Time:   O(n²·d), where d = 4 or 8.
// Memory: O(n²) for visited flags and output.
func (g *Grid) ConnectedComponents(conn Connectivity) [][]int {
	seen := make([]bool, g.n*g.n)
	offsets := conn.offsets()
	var comps [][]int

	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			if g.cells[r][c] < 1 {
				continue // gap
			}
			i0 := g.index(r, c)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ur, uc := g.Coordinate(queue[qi])
				for _, d := range offsets {
					vr, vc := ur+d[0], uc+d[1]
					if !g.InBounds(vr, vc) || g.cells[vr][vc] < 1 {
						continue
					}
					vi := g.index(vr, vc)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

// Filled counts cells with value ≥ 1.
func (g *Grid) Filled() int {
	var count int
	for _, row := range g.cells {
		for _, v := range row {
			if v >= 1 {
				count++
			}
		}
	}
	return count
}

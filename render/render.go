// SPDX-License-Identifier: MIT

package render

import "strings"

// Lines renders each row of cells as one string.
func Lines(cells [][]int, opts ...Option) []string {
	cfg := newConfig(opts)
	out := make([]string, len(cells))
	var b strings.Builder
	for i, row := range cells {
		b.Reset()
		for _, v := range row {
			if v == 1 {
				b.WriteString(cfg.filled)
			} else {
				b.WriteString(cfg.empty)
			}
		}
		out[i] = b.String()
	}
	return out
}

// Text renders cells as rows joined by the configured separator.
func Text(cells [][]int, opts ...Option) string {
	cfg := newConfig(opts)
	return strings.Join(Lines(cells, opts...), cfg.separator)
}

// SideBySide renders several grids next to each other, separated by gap
// spaces. Grids with fewer rows are padded with blank lines.
func SideBySide(grids [][][]int, gap int, opts ...Option) string {
	cfg := newConfig(opts)
	var rows int
	blocks := make([][]string, len(grids))
	for i, g := range grids {
		blocks[i] = Lines(g, opts...)
		if len(g) > rows {
			rows = len(g)
		}
	}

	pad := strings.Repeat(" ", gap)
	lines := make([]string, rows)
	for r := 0; r < rows; r++ {
		parts := make([]string, len(blocks))
		for i, blk := range blocks {
			if r < len(blk) {
				parts[i] = blk[r]
			} else if len(grids[i]) > 0 {
				parts[i] = strings.Repeat(cfg.empty, len(grids[i][0]))
			}
		}
		lines[r] = strings.Join(parts, pad)
	}
	return strings.Join(lines, cfg.separator)
}

// Package grid treats a square 2D slice of integer cells as an immutable
// value that can be rotated, mirrored and analysed for connected regions.
//
// What:
//
//   - Grid wraps a non-empty n×n [][]int and deep-copies it on construction.
//   - RotateClockwise applies one quarter turn: G2[i][j] = G[n-1-j][i].
//   - Mirror reverses the cell order inside every row; row order is kept.
//   - ConnectedComponents finds regions of filled cells (value ≥ 1).
//
// Why:
//
//   - Puzzle pieces: orientations of a piece are rotations of its grid,
//     optionally preceded by a flip.
//   - Shape checks: a piece whose filled cells split into several regions
//     cannot be cut from a single sheet.
//
// Complexity:
//
//   - RotateClockwise, Mirror, Clone, Equal: O(n²) time and memory.
//   - ConnectedComponents: O(n²×d), Memory: O(n²)   (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonSquare: rows have differing lengths, or width != height.
//   - ErrOutOfRange: At was called with coordinates outside the grid.
//
// Every operation returns a new Grid; no method mutates its receiver.
package grid

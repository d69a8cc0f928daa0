// Package piece models a single Happy-Cube puzzle piece: a 5×5 grid with a
// solid 3×3 center and a jagged border described by a 16-value edge code.
//
// What:
//
//   - Piece is built once from an edge code read clockwise from the top-left
//     corner and exposes its four edges and four corners.
//   - Transformed is a read-only view of a Piece, mirrored (optionally) and
//     then rotated by 0–3 clockwise quarter turns.
//   - Orientations enumerates all eight views of a piece.
//
// Edge code layout (indices into the 16 values):
//
//	 0  1  2  3  4
//	15  ■  ■  ■  5
//	14  ■  ■  ■  6
//	13  ■  ■  ■  7
//	12 11 10  9  8
//
// Edges are read so that two pieces can be compared directly: Top and
// Bottom left to right, Left and Right top to bottom. Every corner belongs
// to the two edges that meet there.
//
// Transform order is a contract: the piece is flipped over first (each row
// reversed) and then turned. Rotating first and mirroring second gives a
// different grid for any nonzero rotation.
//
// Errors:
//
//   - ErrInvalidPiece: edge code is nil or not 16 values long, a Parse
//     input holds a non-digit, or (WithStrictCells) a value is not 0 or 1.
//   - ErrInvalidCell: strict-mode detail, always reported together with
//     ErrInvalidPiece.
//
// All values are immutable after construction and safe for concurrent readers.
package piece

// Package happycube models the pieces of a Happy Cube style puzzle: flat
// 5×5 tiles with a solid 3×3 center and a jagged border.
//
// A piece is described by 16 binary values read clockwise from its top-left
// corner (1 = filled, 0 = gap). From that edge code the library builds the
// piece's grid, exposes its edges and corners for matching against
// neighbours, and derives rotated and mirrored views without touching the
// original.
//
// Quick ASCII example, edge code 0101001000101101:
//
//	 @ @
//	@@@@
//	 @@@@
//	@@@@
//	@ @
//
// Subpackages:
//
//	grid/         — square cell grids: quarter turns, mirror, connected regions
//	piece/        — Piece (edge code → grid, edges, corners) and Transformed views
//	render/       — grid → text, used by tests and the CLI
//	cmd/happycube — command-line tool to draw and inspect pieces
//
//	go get github.com/katalvlaran/happycube
package happycube

// Package render turns a grid of binary cells into text.
//
// A cell equal to 1 is drawn with the filled glyph ('@' by default), any
// other value with the empty glyph (' '). Rows are joined with a
// separator ("\n"). No trailing separator is written.
//
//	render.Text(p.Grid())                       // " @ @ \n@@@@ \n..."
//	render.Text(p.Grid(), render.WithFilled("█"))
package render

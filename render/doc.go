// Package render draws a grid and a route as text.
//
// Each cell occupies a 3-wide column; one line is written per row:
//
//	-  -  -  -  -  █  ●
//	-  -  -  █  -  █  ●
//
// Defaults: ● for route cells, - for free cells, █ for walls. Glyphs can be
// swapped with WithGlyphs, and the two route ends highlighted with WithEndpoints.
// Trailing padding at the end of a row is dropped.
package render

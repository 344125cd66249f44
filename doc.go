// Package gridpath finds cheapest routes across rectangular wall grids.
//
// A board is a W×H array of cells, each free or a wall, addressed by
// row-major index (index = y·W + x). Routes move between free cells either
// orthogonally (4 neighbours) or also diagonally (8 neighbours).
//
// Everything is organized under small subpackages:
//
//	grid/      board construction, neighbours, components, minimum wall breach
//	cost/      step costs and heuristics (Manhattan, Octile, Chebyshev)
//	astar/     A* search with an indexed open set, hooks and budgets
//	dijkstra/  exact distance fields, used as a reference for A*
//	render/    text drawing of a board and a route
//	config/    scenario loading from .env and GRIDPATH_* variables
//
// Quick ASCII example (S start, G goal, █ wall, ● route):
//
//	●  ●  G
//	●  █  -
//	S  █  -
//
// The command in cmd/gridpath runs one configured search and prints the result:
//
//	go run ./cmd/gridpath
package gridpath

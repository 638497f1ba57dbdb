// Package mapnav is a grid-navigation toolkit for games and simulations:
// hexagonal and square tile grids with elevation layers, neighbor and range
// queries, A* pathfinding and tagged links between nodes.
//
// What is mapnav?
//
//	A small set of packages that turn a width × height layout into a
//	queryable navigation grid:
//		• Topologies: square (4/8-way), hex axial, hex odd/even offset, flat or pointy
//		• Node store: flat index-addressed nodes with heights and validity
//		• Queries: neighbors, cost-bounded reach, rings, borders, regions
//		• Pathfinding: A* with a straight-line tie-break
//		• Links: symmetric tags between node pairs (doors, walls, bridges)
//		• Terrain: flat, random and simplex-noise heights; surface fitting
//		• Persistence: SQLite snapshots with full history
//
// Everything is organized under these subpackages:
//
//	topology/  coordinate systems, indexing, neighbor tables, world positions
//	grid/      the node store and every query and edit on it
//	astar/     A* over any index-addressed graph
//	terrain/   height sources and probe surfaces
//	store/     snapshot database (sqlx + SQLite)
//	config/    HJSON settings
//	cmd/mapnav  command line front end
//
// Quick ASCII example (axial hex, flat top, width = height = 3):
//
//	      (0,-1)
//	(-1,0)      (1,-1)
//	      (0,0)
//	(-1,1)      (1,0)
//	      (0,1)
//
// represents a center node and its six neighbors.
//
//	go get github.com/katalvlaran/mapnav
package mapnav

// Package topology maps between logical grid coordinates, flat array indices
// and local (grid-space) positions for the tile layouts supported by mapnav.
//
// What:
//
//   - Square grids with 4- or 8-connectivity.
//   - Hexagonal grids in axial coordinates (diamond-shaped valid region inside
//     a W×H bounding array) or in odd/even offset coordinates, either
//     flat-top or pointy-top.
//
// Every layout is described by a Layout value and served by a Topology built
// with New. A Topology is immutable and holds no node data; it is the pure
// coordinate math that the grid package builds its node array on.
//
// Conventions:
//
//   - Coord{Q, R} is column/row: axial q/r for HexAxial, offset x/y otherwise.
//   - Positions are returned as (x, z) on the ground plane; height is owned
//     by the grid.
//   - Lookups outside the array return -1, never panic.
//
// Neighbor order:
//
// Neighbors and Steps return offsets from fixed direction tables, always in
// the same rotational order, so callers can correlate a slot with a direction.
// Square layouts always report 8 neighbors from Neighbors; Steps honors the
// Diagonal flag.
//
// Complexity: every per-coordinate operation is O(1); Area is O(radius²).
package topology

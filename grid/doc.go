// Package grid owns the node array of a tile map and answers the spatial
// queries a turn-based or tactical game needs: neighbors, geometric ranges,
// cost-bounded reachability, borders, connected regions and A* paths.
//
// What:
//
//   - A Grid is a flat slice of value-type Nodes laid out by a topology.Topology
//     (hex axial, hex odd/even offset or square). Nodes are addressed by index;
//     index -1 marks a placeholder that is never part of the grid (the corners of
//     the axial bounding array).
//   - Heights are integer layers in [MinHeight, MaxHeight]. Each Node caches its
//     local position relative to the grid origin; WorldPosition adds the origin.
//   - A sparse symmetric link table tags node pairs (walls, doors). Cost callbacks
//     consult it through BlockedByLinks.
//   - Game-specific per-node data lives in an Extra[T] side table keyed by index.
//
// Callbacks:
//
//	ValidFunc(n) bool         – extra per-query validity rule (occupancy, terrain…).
//	CostFunc(from, to) float  – edge cost; <= 0 means blocked, 1 is nominal.
//
// Errors:
//
//   - Lookups never fail loudly: a bad index or coordinate yields -1, ok == false
//     or an empty slice.
//   - Edits with invalid preconditions are logged through slog and returned as
//     sentinel errors (ErrBadSize, ErrBadHeightRange, ErrLinkEndpoint, …).
//   - An even width or height on an axial layout is decremented with a warning.
//
// Concurrency:
//
//	A Grid is not safe for concurrent use. One owner performs edits and queries
//	serially; Create invalidates every index handed out before.
//
// Complexity:
//
//   - Neighbors, Distance, lookups: O(1).
//   - Within, Ring: O(r²). Reachable: bounded by radius and branching factor,
//     may revisit nodes (strictly-lower re-expansion).
//   - Path: O(V log V) via package astar.
//   - Regions: O(V·d), d = 6 or 4/8.
package grid

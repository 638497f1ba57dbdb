package grid

import (
	"slices"

	"github.com/katalvlaran/mapnav/topology"
)

// Config returns the normalized configuration the grid was created with.
func (g *Grid) Config() Config { return g.cfg }

// Topology returns the coordinate math of the current layout.
func (g *Grid) Topology() topology.Topology { return g.topo }

// Len is the length of the node array, placeholders included.
func (g *Grid) Len() int { return len(g.nodes) }

// Nodes returns a copy of the node array.
func (g *Grid) Nodes() []Node { return slices.Clone(g.nodes) }

// Node returns the node at idx. ok is false for out-of-range indices and
// placeholders. Forced-invalid nodes are returned.
func (g *Grid) Node(idx int) (Node, bool) {
	if !g.inRange(idx) {
		return Node{Index: -1}, false
	}
	return g.nodes[idx], true
}

// ValidIndex reports whether idx addresses a node that takes part in queries.
func (g *Grid) ValidIndex(idx int) bool {
	return idx >= 0 && idx < len(g.nodes) && g.nodes[idx].Valid()
}

// NodeIndex returns the index of the node at (q, r), or -1 when (q, r) is
// outside the array or a placeholder.
func (g *Grid) NodeIndex(q, r int) int {
	idx := g.topo.Index(topology.Coord{Q: q, R: r})
	if !g.inRange(idx) {
		return -1
	}
	return idx
}

// NodeAt returns the node at (q, r).
func (g *Grid) NodeAt(q, r int) (Node, bool) {
	return g.Node(g.NodeIndex(q, r))
}

// NodeAtWorld returns the node whose tile contains the world position pos.
// Only the ground plane (X, Z) is considered. Positions over placeholders or
// forced-invalid nodes resolve to no node.
func (g *Grid) NodeAtWorld(pos topology.Vec3) (Node, bool) {
	local := pos.Sub(g.cfg.Origin)
	idx := g.topo.Index(g.topo.CoordAt(local.X, local.Z))
	if !g.ValidIndex(idx) {
		return Node{Index: -1}, false
	}
	return g.nodes[idx], true
}

// WorldPosition returns the world-space center of the node at idx.
func (g *Grid) WorldPosition(idx int) (topology.Vec3, bool) {
	if !g.inRange(idx) {
		return topology.Vec3{}, false
	}
	return g.cfg.Origin.Add(g.nodes[idx].Local), true
}

// Distance is the step distance between two nodes, or 0 if either index is bad.
func (g *Grid) Distance(a, b int) int {
	if !g.inRange(a) || !g.inRange(b) {
		return 0
	}
	return g.topo.Distance(g.nodes[a].Coord(), g.nodes[b].Coord())
}

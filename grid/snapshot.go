package grid

import (
	"fmt"

	"github.com/katalvlaran/mapnav/topology"
)

// NodeState is the persisted part of a Node.
type NodeState struct {
	Q, R          int
	H             int
	ForcedInvalid bool
}

// Snapshot is the state of a grid that must survive between sessions.
// Positions are not part of it; they are recomputed by Restore.
type Snapshot struct {
	Config Config
	Nodes  []NodeState
	Links  []Link
}

// Snapshot captures the configuration, every grid node and every link.
// Placeholders are omitted.
func (g *Grid) Snapshot() Snapshot {
	s := Snapshot{Config: g.cfg, Links: g.AllLinks()}
	s.Nodes = make([]NodeState, 0, len(g.nodes))
	for _, n := range g.nodes {
		if n.Index < 0 {
			continue
		}
		s.Nodes = append(s.Nodes, NodeState{Q: n.Q, R: n.R, H: n.H, ForcedInvalid: n.ForcedInvalid})
	}
	return s
}

// Restore rebuilds a grid from a snapshot. Nodes not present in the snapshot
// keep MinHeight. Hooks fire once, after heights and links are applied.
//
// Errors:
//
//   - any Create error for the snapshot's Config;
//   - ErrBadIndex if a node state does not address a grid node;
//   - ErrLinkEndpoint, ErrSelfLink for malformed links.
func Restore(s Snapshot, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Heights = nil
	g := &Grid{opts: o, log: o.Logger}
	if err := g.build(s.Config); err != nil {
		return nil, err
	}
	for _, ns := range s.Nodes {
		idx := g.topo.Index(topology.Coord{Q: ns.Q, R: ns.R})
		if !g.inRange(idx) {
			return nil, fmt.Errorf("grid: restore node %d,%d: %w", ns.Q, ns.R, ErrBadIndex)
		}
		g.setHeight(idx, ns.H)
		g.nodes[idx].ForcedInvalid = ns.ForcedInvalid
	}
	for _, l := range s.Links {
		if err := g.SetLink(l.A, l.B, l.Tag); err != nil {
			return nil, fmt.Errorf("grid: restore link: %w", err)
		}
	}
	g.notifyCreated()
	return g, nil
}

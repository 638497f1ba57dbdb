package grid

import (
	"fmt"
	"math"
)

// ChangeHeight shifts every valid node by offset layers, clamped to
// [MinHeight, MaxHeight], and fires ChangeUpdated. Forced-invalid nodes keep
// their height.
func (g *Grid) ChangeHeight(offset int) {
	for i := range g.nodes {
		if !g.nodes[i].Valid() {
			continue
		}
		g.setHeight(i, g.nodes[i].H+offset)
	}
	g.changed(ChangeUpdated)
}

// SmoothOut moves every valid node one layer towards the neighbor with the
// largest height difference (the first one in canonical order on ties).
// Nodes are visited in array order and see the already smoothed heights of
// earlier nodes. Fires ChangeUpdated.
func (g *Grid) SmoothOut() {
	for idx := range g.nodes {
		if !g.nodes[idx].Valid() {
			continue
		}
		h := g.nodes[idx].H
		direction, lastDiff := 0, 0
		for _, id := range g.Neighbors(idx, false, true, nil) {
			d := g.nodes[id].H - h
			if d < 0 {
				d = -d
			}
			if d > lastDiff {
				lastDiff = d
				direction = 1
				if g.nodes[id].H < h {
					direction = -1
				}
			}
		}
		if direction != 0 {
			g.setHeight(idx, h+direction)
		}
	}
	g.changed(ChangeUpdated)
}

// AdjustToSurface fits node heights to a surface by probing it vertically
// from start down to end at every node center (world space).
//
// On a hit the node's local Y is set to the exact hit height and H to the
// nearest layer. On a miss H becomes MinHeight and, with markInvalid, the
// node is forced invalid. Every node's ForcedInvalid flag is reset first.
//
// precision:
//
//	0 – probe the center only.
//	1 – also probe every tile corner (6 hex, 4 square); any corner miss is a miss.
//	2 – as 1, and the height is the average of the center and all corners.
//
// Errors:
//
//   - ErrBadSurfaceRange if end >= start or surface is nil. Nothing is changed.
func (g *Grid) AdjustToSurface(surface Surface, start, end float64, markInvalid bool, precision int) error {
	if surface == nil {
		g.log.Error("adjust to surface rejected: nil surface")
		return fmt.Errorf("%w: nil surface", ErrBadSurfaceRange)
	}
	if end >= start {
		g.log.Error("adjust to surface rejected: end must be below start", "start", start, "end", end)
		return fmt.Errorf("%w: start=%v end=%v", ErrBadSurfaceRange, start, end)
	}
	precision = clamp(precision, 0, 2)
	corners := g.topo.Corners()

	for i := range g.nodes {
		n := &g.nodes[i]
		if n.Index < 0 {
			continue
		}
		n.ForcedInvalid = false
		pos := g.cfg.Origin.Add(n.Local)

		y, ok := surface.Probe(pos.X, pos.Z, start, end)
		if ok && precision > 0 {
			sum := y
			for _, c := range corners {
				cy, hit := surface.Probe(pos.X+c[0], pos.Z+c[1], start, end)
				if !hit {
					ok = false
					break
				}
				sum += cy
			}
			if ok && precision == 2 {
				y = sum / float64(len(corners)+1)
			}
		}

		if !ok {
			g.setHeight(i, g.cfg.MinHeight)
			n.ForcedInvalid = markInvalid
			continue
		}
		local := y - g.cfg.Origin.Y
		n.H = clamp(int(math.RoundToEven(local/g.cfg.HeightStep)), g.cfg.MinHeight, g.cfg.MaxHeight)
		n.Local.Y = local
	}
	g.changed(ChangeUpdated)
	return nil
}

// SetHeight sets the layer of a single node, clamped to [MinHeight, MaxHeight],
// and fires ChangeUpdated.
func (g *Grid) SetHeight(idx, h int) error {
	if !g.inRange(idx) {
		g.log.Warn("set height rejected", "idx", idx)
		return fmt.Errorf("%w: %d", ErrBadIndex, idx)
	}
	g.setHeight(idx, h)
	g.changed(ChangeUpdated)
	return nil
}

// SetForcedInvalid toggles the external validity override of a node and
// fires ChangeUpdated.
func (g *Grid) SetForcedInvalid(idx int, invalid bool) error {
	if !g.inRange(idx) {
		g.log.Warn("set forced invalid rejected", "idx", idx)
		return fmt.Errorf("%w: %d", ErrBadIndex, idx)
	}
	g.nodes[idx].ForcedInvalid = invalid
	g.changed(ChangeUpdated)
	return nil
}

func (g *Grid) setHeight(idx, h int) {
	n := &g.nodes[idx]
	n.H = clamp(h, g.cfg.MinHeight, g.cfg.MaxHeight)
	n.Local.Y = float64(n.H) * g.cfg.HeightStep
}

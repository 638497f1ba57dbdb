package grid

// Neighbors returns the indices around idx in canonical rotational order.
//
// Behavior:
//
//   - includeCentral: idx itself is tested first and prepended.
//   - includeInvalid: a -1 is emitted for every slot that is outside the grid,
//     a placeholder, forced invalid or rejected by valid. The result then always
//     has 6 (hex) or 8 (square) neighbor slots, so slot i maps to direction i.
//   - Square grids enumerate all 8 directions regardless of Config.Diagonal.
//
// Returns nil when idx is not a grid node.
func (g *Grid) Neighbors(idx int, includeInvalid, includeCentral bool, valid ValidFunc) []int {
	if !g.inRange(idx) {
		return nil
	}
	around := g.topo.Neighbors(g.nodes[idx].Coord())
	out := make([]int, 0, len(around)+1)

	if includeCentral {
		if g.accept(idx, valid) {
			out = append(out, idx)
		} else if includeInvalid {
			out = append(out, -1)
		}
	}
	for _, c := range around {
		id := g.topo.Index(c)
		if g.accept(id, valid) {
			out = append(out, id)
		} else if includeInvalid {
			out = append(out, -1)
		}
	}
	return out
}

// StepNeighbors returns the valid neighbors of idx under traversal
// connectivity: 6 for hex, 4 or 8 for square depending on Config.Diagonal.
func (g *Grid) StepNeighbors(idx int) []int {
	if !g.inRange(idx) {
		return nil
	}
	steps := g.topo.Steps(g.nodes[idx].Coord())
	out := make([]int, 0, len(steps))
	for _, c := range steps {
		if id := g.topo.Index(c); g.ValidIndex(id) {
			out = append(out, id)
		}
	}
	return out
}

// accept reports whether idx is a valid node that also passes valid.
func (g *Grid) accept(idx int, valid ValidFunc) bool {
	if !g.ValidIndex(idx) {
		return false
	}
	return valid == nil || valid(g.nodes[idx])
}

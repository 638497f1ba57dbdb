package grid

// Reachable returns every node that can be reached from idx with a total
// step cost of at most radius. The result has no particular order, never
// contains duplicates and never contains idx itself.
//
// The search is a depth-first cost relaxation rather than a Dijkstra frontier.
// From each node, for every traversal neighbor except the one it was entered from:
//
//  1. cost = cost(from, to), or 1 when cost is nil; cost <= 0 blocks the step.
//  2. total = depth + cost; the step is skipped when total > radius.
//  3. The neighbor is accepted.
//  4. Expansion stops at total == radius, and is pruned unless total is strictly
//     lower than the best total recorded for that neighbor so far.
//
// Ties are resolved by neighbor enumeration order, which is fixed per topology.
//
// Complexity: bounded by radius and branching factor; a node may be expanded
// more than once when a cheaper route to it is found later.
func (g *Grid) Reachable(idx, radius int, cost CostFunc) []int {
	out := []int{}
	if !g.ValidIndex(idx) {
		return out
	}
	w := &reach{
		g:      g,
		cost:   cost,
		source: idx,
		radius: float64(radius),
		seen:   make(map[int]bool),
		best:   make(map[int]float64),
	}
	w.expand(idx, -1, 0)
	return w.accepted
}

// reach holds the mutable state of one Reachable call.
type reach struct {
	g        *Grid
	cost     CostFunc
	source   int
	radius   float64
	seen     map[int]bool    // accepted set
	best     map[int]float64 // lowest total that triggered an expansion
	accepted []int           // accepted indices in discovery order
}

func (w *reach) expand(idx, cameFrom int, depth float64) {
	for _, next := range w.g.StepNeighbors(idx) {
		if next == cameFrom || next == w.source {
			continue
		}
		c := 1.0
		if w.cost != nil {
			c = w.cost(w.g.nodes[idx], w.g.nodes[next])
		}
		if c <= 0 {
			continue
		}
		total := depth + c
		if total > w.radius {
			continue
		}
		if !w.seen[next] {
			w.seen[next] = true
			w.accepted = append(w.accepted, next)
		}
		if total == w.radius {
			continue
		}
		if prev, ok := w.best[next]; ok && prev <= total {
			continue
		}
		w.best[next] = total
		w.expand(next, idx, total)
	}
}

// Within returns the valid nodes inside the geometric radius around idx,
// ignoring costs. Radius 1 yields the neighbors in canonical order; larger
// radii yield cube-ring order (hex) or box order (square).
//
// A radius <= 0 yields only idx, and only when includeCentral is set.
// Returns nil when idx is not a grid node.
func (g *Grid) Within(idx, radius int, includeCentral bool, valid ValidFunc) []int {
	if !g.inRange(idx) {
		return nil
	}
	if radius <= 0 {
		if includeCentral && g.accept(idx, valid) {
			return []int{idx}
		}
		return []int{}
	}
	if radius == 1 {
		return g.Neighbors(idx, false, includeCentral, valid)
	}

	area := g.topo.Area(g.nodes[idx].Coord(), radius)
	out := make([]int, 0, len(area)+1)
	if includeCentral && g.accept(idx, valid) {
		out = append(out, idx)
	}
	for _, c := range area {
		if id := g.topo.Index(c); g.accept(id, valid) {
			out = append(out, id)
		}
	}
	return out
}

// Ring returns the band of nodes whose distance from idx lies in
// [radius, radius+width-1]. radius and width are clamped to at least 1.
// Ring(idx, 1, 1, valid) equals Neighbors(idx, false, false, valid).
func (g *Grid) Ring(idx, radius, width int, valid ValidFunc) []int {
	radius = max(radius, 1)
	width = max(width, 1)

	all := g.Within(idx, radius+width-1, false, valid)
	if all == nil || radius == 1 {
		return all
	}
	inner := make(map[int]bool)
	for _, id := range g.Within(idx, radius-1, false, valid) {
		inner[id] = true
	}
	out := all[:0]
	for _, id := range all {
		if !inner[id] {
			out = append(out, id)
		}
	}
	return out
}

// Border returns the members of ids that touch the outside of the set: a
// member is a border node if any of its full-adjacency neighbor slots is
// invalid, rejected by valid, or not in ids. Order follows ids.
func (g *Grid) Border(ids []int, valid ValidFunc) []int {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	out := []int{}
	for _, id := range ids {
		for _, n := range g.Neighbors(id, true, false, valid) {
			if n < 0 || !set[n] {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

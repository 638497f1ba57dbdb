package astar

import (
	"container/heap"
	"math"
	"slices"
)

// Path returns the cheapest route from start to goal, excluding start and
// including goal. It returns an empty slice when no route exists, when either
// endpoint is not Valid, or when start == goal.
//
// Options customization:
//
//   - WithCost(fn): edge cost callback; <= 0 blocks the edge.
//   - WithMaxCost(x): routes whose accumulated cost exceeds x are abandoned.
//   - WithTieBreak(w): weight of the straight-line tie-breaker.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Path(g Graph, start, goal int, opts ...Option) []int {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate endpoints
	out := []int{}
	if g == nil || start == goal || !g.Valid(start) || !g.Valid(goal) {
		return out
	}

	// 3) Fast path for a direct neighbor with a nominal or higher cost
	if slices.Contains(g.Steps(start), goal) {
		if c := cfg.cost(start, goal); c >= 1 && c <= cfg.MaxCost {
			return append(out, goal)
		}
	}

	// 4) Full search
	r := &runner{
		g:       g,
		options: cfg,
		start:   start,
		goal:    goal,
		cost:    make([]float64, g.Len()),
		prev:    make([]int, g.Len()),
		pq:      make(frontier, 0, 64),
	}
	r.init()
	if !r.process() {
		return out
	}
	return r.path(out)
}

// runner holds the mutable state of a single search.
type runner struct {
	g       Graph
	options Options
	start   int
	goal    int
	cost    []float64 // best known cost from start; +Inf when unseen
	prev    []int     // predecessor on the best known route; -1 when none
	pq      frontier
	seq     int
	gq, gr  int // goal coordinate
	sq, sr  int // start coordinate, relative to goal
}

// init resets costs and predecessors and pushes start with cost 0.
func (r *runner) init() {
	for i := range r.cost {
		r.cost[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.gq, r.gr = r.g.Coord(r.goal)
	q, rr := r.g.Coord(r.start)
	r.sq, r.sr = q-r.gq, rr-r.gr

	r.cost[r.start] = 0
	heap.Init(&r.pq)
	r.push(r.start, 0)
}

// process pops nodes in priority order until the goal is popped (true) or
// the frontier is exhausted (false).
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*item)
		// skip stale entries superseded by a cheaper route
		if it.g > r.cost[it.id] {
			continue
		}
		if it.id == r.goal {
			return true
		}
		r.relax(it.id)
	}
	return false
}

// relax tries to improve the route to every step neighbor of u.
func (r *runner) relax(u int) {
	for _, v := range r.g.Steps(u) {
		if v < 0 || v >= len(r.cost) || !r.g.Valid(v) {
			continue
		}
		c := r.options.cost(u, v)
		if c <= 0 || math.IsNaN(c) {
			continue
		}
		next := r.cost[u] + c
		if next > r.options.MaxCost || next >= r.cost[v] {
			continue
		}
		r.cost[v] = next
		r.prev[v] = u
		r.push(v, next)
	}
}

func (r *runner) push(id int, g float64) {
	heap.Push(&r.pq, &item{id: id, g: g, f: g + r.heuristic(id), seq: r.seq})
	r.seq++
}

// heuristic is the step distance to the goal plus the weighted cross product
// of (n - goal) and (start - goal).
func (r *runner) heuristic(n int) float64 {
	q, rr := r.g.Coord(n)
	dx1, dy1 := q-r.gq, rr-r.gr
	cross := dx1*r.sr - r.sq*dy1
	if cross < 0 {
		cross = -cross
	}
	return float64(r.g.Distance(n, r.goal)) + float64(cross)*r.options.TieBreak
}

// path walks predecessors back from goal and appends the route to out.
func (r *runner) path(out []int) []int {
	for at := r.goal; at != r.start; at = r.prev[at] {
		if at < 0 {
			return out[:0]
		}
		out = append(out, at)
	}
	slices.Reverse(out)
	return out
}

package grid

import "github.com/katalvlaran/mapnav/astar"

// Path returns the cheapest route from start to goal under cost, excluding
// start and including goal. A nil cost means 1 per step. The result is empty
// when goal is unreachable, either endpoint is not a valid node, or
// start == goal.
func (g *Grid) Path(start, goal int, cost CostFunc, opts ...astar.Option) []int {
	if cost != nil {
		opts = append([]astar.Option{astar.WithCost(func(from, to int) float64 {
			return cost(g.nodes[from], g.nodes[to])
		})}, opts...)
	}
	return astar.Path(searchGraph{g}, start, goal, opts...)
}

// searchGraph exposes a Grid as an astar.Graph.
type searchGraph struct{ g *Grid }

func (s searchGraph) Len() int              { return len(s.g.nodes) }
func (s searchGraph) Valid(idx int) bool    { return s.g.ValidIndex(idx) }
func (s searchGraph) Steps(idx int) []int   { return s.g.StepNeighbors(idx) }
func (s searchGraph) Distance(a, b int) int { return s.g.Distance(a, b) }

func (s searchGraph) Coord(idx int) (q, r int) {
	n := s.g.nodes[idx]
	return n.Q, n.R
}

package astar

import "math"

// Graph is the view of a grid the search needs. Indices run from 0 to Len()-1.
type Graph interface {
	// Len is the number of index slots.
	Len() int
	// Valid reports whether idx may appear on a path.
	Valid(idx int) bool
	// Steps returns the traversable neighbors of idx.
	Steps(idx int) []int
	// Distance is the integer step distance between a and b.
	Distance(a, b int) int
	// Coord returns the logical column/row of idx, used by the tie-breaker.
	Coord(idx int) (q, r int)
}

// CostFunc returns the cost of stepping from one node to a neighbor.
// A cost <= 0 blocks the step.
type CostFunc func(from, to int) float64

// Options configures a search.
//
// Cost     – edge cost callback (nil means 1 per step).
// MaxCost  – accumulated cost budget; relaxations above it are skipped. Default +Inf.
// TieBreak – weight of the cross-product heuristic term. Default 0.001.
type Options struct {
	Cost     CostFunc
	MaxCost  float64
	TieBreak float64
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithCost sets the edge cost callback.
func WithCost(fn CostFunc) Option {
	return func(o *Options) {
		o.Cost = fn
	}
}

// WithMaxCost limits the accumulated cost of any explored route.
// Negative or NaN limits are ignored.
func WithMaxCost(limit float64) Option {
	return func(o *Options) {
		if limit >= 0 {
			o.MaxCost = limit
		}
	}
}

// WithTieBreak sets the weight of the cross-product term. Zero disables it.
// Negative or NaN weights are ignored.
func WithTieBreak(w float64) Option {
	return func(o *Options) {
		if w >= 0 {
			o.TieBreak = w
		}
	}
}

// DefaultOptions returns Options with unit costs, no budget and a 0.001 tie-breaker.
func DefaultOptions() Options {
	return Options{
		MaxCost:  math.Inf(1),
		TieBreak: 0.001,
	}
}

func (o Options) cost(from, to int) float64 {
	if o.Cost == nil {
		return 1
	}
	return o.Cost(from, to)
}

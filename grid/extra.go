package grid

import (
	"maps"
	"slices"
)

// Extra is a side table of game-specific data keyed by node index. It is not
// tied to a grid's lifetime: call Reset when the grid is recreated.
type Extra[T any] struct {
	values map[int]T
}

// NewExtra returns an empty side table.
func NewExtra[T any]() *Extra[T] {
	return &Extra[T]{values: make(map[int]T)}
}

// Get returns the value stored for idx.
func (e *Extra[T]) Get(idx int) (T, bool) {
	v, ok := e.values[idx]
	return v, ok
}

// Set stores v for idx.
func (e *Extra[T]) Set(idx int, v T) { e.values[idx] = v }

// Delete removes the value stored for idx.
func (e *Extra[T]) Delete(idx int) { delete(e.values, idx) }

// Len is the number of stored values.
func (e *Extra[T]) Len() int { return len(e.values) }

// Indices returns the indices with a stored value in ascending order.
func (e *Extra[T]) Indices() []int { return slices.Sorted(maps.Keys(e.values)) }

// Reset drops every stored value.
func (e *Extra[T]) Reset() { clear(e.values) }

// Valid returns a ValidFunc that accepts nodes for which keep reports true on
// the stored value. Nodes without a value are accepted when missing is true.
func (e *Extra[T]) Valid(keep func(v T) bool, missing bool) ValidFunc {
	return func(n Node) bool {
		v, ok := e.values[n.Index]
		if !ok {
			return missing
		}
		return keep(v)
	}
}

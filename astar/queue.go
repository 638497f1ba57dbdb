package astar

// item is a heap entry: a node, the route cost it was pushed with and its priority.
type item struct {
	id  int
	g   float64 // accumulated cost when pushed; stale if above the best known cost
	f   float64 // g + heuristic
	seq int     // insertion order, breaks ties FIFO
}

// frontier is a min-heap of *item ordered by f, then by seq.
// Stale entries are left in place and skipped when popped (lazy decrease-key).
type frontier []*item

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by priority, then by insertion.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be an *item. Called by heap.Push.
func (pq *frontier) Push(x any) { *pq = append(*pq, x.(*item)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontier) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}

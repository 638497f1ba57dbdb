// Package astar implements A* shortest-path search over integer-indexed
// graphs with per-edge cost callbacks.
//
// A* expands nodes in order of f = g + h, where g is the accumulated cost from
// the start and h estimates the remaining cost. Here h is the graph's integer
// step distance to the goal plus a sub-unit cross-product term
//
//	h(n) = Distance(n, goal) + |dx1*dy2 - dx2*dy1| * TieBreak
//
// with (dx1, dy1) = n - goal and (dx2, dy2) = start - goal in q/r space. The
// cross term prefers nodes close to the straight start→goal line, so among
// equally short paths the straightest one wins.
//
// Behavior:
//
//   - Fast path: if goal is a direct step neighbor of start and the edge cost is
//     >= 1, the result is [goal] without searching.
//   - Edges whose cost is <= 0 are never traversed.
//   - Equal priorities pop in insertion order (FIFO).
//   - A strictly cheaper route to a node overwrites its predecessor.
//   - The result excludes start and includes goal. It is empty when goal is
//     unreachable, either endpoint is invalid, or start == goal.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with lazy decrease-key.
//   - Space: O(V + E) for costs, predecessors and the heap.
//
// Options:
//
//	WithCost(fn)        – edge cost callback; default 1 per step.
//	WithMaxCost(limit)  – skip relaxations whose accumulated cost exceeds limit.
//	WithTieBreak(w)     – weight of the cross-product term; default 0.001.
package astar

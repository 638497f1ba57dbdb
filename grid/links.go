package grid

import (
	"cmp"
	"fmt"
	"slices"
)

// Link is a tag between two nodes. A is always the lower index.
type Link struct {
	A, B int
	Tag  int
}

// pair is a normalized (low, high) key, so a single entry serves both directions.
type pair struct{ lo, hi int }

func makePair(a, b int) pair {
	if a > b {
		a, b = b, a
	}
	return pair{a, b}
}

// linkTable maps node pairs to tags plus a per-node adjacency for Links(idx).
type linkTable struct {
	tags map[pair]int
	adj  map[int]map[int]struct{}
}

func newLinkTable() linkTable {
	return linkTable{tags: make(map[pair]int), adj: make(map[int]map[int]struct{})}
}

func (t linkTable) set(a, b, tag int) {
	t.tags[makePair(a, b)] = tag
	t.touch(a, b)
	t.touch(b, a)
}

func (t linkTable) touch(a, b int) {
	m, ok := t.adj[a]
	if !ok {
		m = make(map[int]struct{})
		t.adj[a] = m
	}
	m[b] = struct{}{}
}

func (t linkTable) remove(a, b int) {
	delete(t.tags, makePair(a, b))
	t.untouch(a, b)
	t.untouch(b, a)
}

func (t linkTable) untouch(a, b int) {
	if m, ok := t.adj[a]; ok {
		delete(m, b)
		if len(m) == 0 {
			delete(t.adj, a)
		}
	}
}

// checkLink validates link endpoints and logs rejected edits.
func (g *Grid) checkLink(op string, a, b int) error {
	if !g.inRange(a) || !g.inRange(b) {
		g.log.Warn("link edit rejected: endpoint is not a grid node", "op", op, "a", a, "b", b)
		return fmt.Errorf("%w: %d-%d", ErrLinkEndpoint, a, b)
	}
	if a == b {
		g.log.Warn("link edit rejected: self link", "op", op, "node", a)
		return fmt.Errorf("%w: %d", ErrSelfLink, a)
	}
	return nil
}

// SetLink tags the pair (a, b) in both directions, replacing any previous tag.
// The nodes do not need to be adjacent.
func (g *Grid) SetLink(a, b, tag int) error {
	if err := g.checkLink("set", a, b); err != nil {
		return err
	}
	g.links.set(a, b, tag)
	return nil
}

// Link returns the tag between a and b. ok is false when no link exists.
func (g *Grid) Link(a, b int) (tag int, ok bool) {
	tag, ok = g.links.tags[makePair(a, b)]
	return tag, ok
}

// RemoveLink deletes the link between a and b in both directions.
// Removing a link that does not exist is not an error.
func (g *Grid) RemoveLink(a, b int) error {
	if err := g.checkLink("remove", a, b); err != nil {
		return err
	}
	g.links.remove(a, b)
	return nil
}

// Links returns every link of idx as other-node → tag. The map is a copy.
func (g *Grid) Links(idx int) map[int]int {
	out := make(map[int]int, len(g.links.adj[idx]))
	for other := range g.links.adj[idx] {
		out[other] = g.links.tags[makePair(idx, other)]
	}
	return out
}

// AllLinks returns every link once, sorted by (A, B).
func (g *Grid) AllLinks() []Link {
	out := make([]Link, 0, len(g.links.tags))
	for p, tag := range g.links.tags {
		out = append(out, Link{A: p.lo, B: p.hi, Tag: tag})
	}
	slices.SortFunc(out, func(x, y Link) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}
		return cmp.Compare(x.B, y.B)
	})
	return out
}

// BlockedByLinks wraps next so that any step across a link with a non-zero tag
// costs 0 (blocked). Other steps defer to next, or cost 1 when next is nil.
func BlockedByLinks(g *Grid, next CostFunc) CostFunc {
	return func(from, to Node) float64 {
		if tag, ok := g.Link(from.Index, to.Index); ok && tag != 0 {
			return 0
		}
		if next == nil {
			return 1
		}
		return next(from, to)
	}
}

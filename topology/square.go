package topology

import "math"

var (
	// square4Directions: E, S, W, N.
	square4Directions = []Coord{{+1, 0}, {0, +1}, {-1, 0}, {0, -1}}
	// square8Directions: E, SE, S, SW, W, NW, N, NE.
	square8Directions = []Coord{{+1, 0}, {+1, +1}, {0, +1}, {-1, +1}, {-1, 0}, {-1, -1}, {0, -1}, {+1, -1}}
)

// square implements Topology for rectangular grids of square tiles, centered
// on the grid origin.
type square struct {
	l      Layout
	ox, oz float64
}

func newSquare(l Layout) *square {
	return &square{
		l:  l,
		ox: -float64(l.Width)*l.NodeSize/2 + l.NodeSize/2,
		oz: -float64(l.Height)*l.NodeSize/2 + l.NodeSize/2,
	}
}

func (t *square) Layout() Layout      { return t.l }
func (t *square) Size() int           { return t.l.Width * t.l.Height }
func (t *square) Cells() []Coord      { return rectCells(t.l) }
func (t *square) OnGrid(c Coord) bool { return t.Index(c) >= 0 }
func (t *square) Index(c Coord) int   { return rectIndex(t.l, c) }

func (t *square) LocalPosition(c Coord) (x, z float64) {
	return t.l.NodeSize*float64(c.Q) + t.ox, t.l.NodeSize*float64(c.R) + t.oz
}

func (t *square) CoordAt(x, z float64) Coord {
	return Coord{
		Q: int(math.RoundToEven((x - t.ox) / t.l.NodeSize)),
		R: int(math.RoundToEven((z - t.oz) / t.l.NodeSize)),
	}
}

// Neighbors always uses 8 directions so that rings and borders see diagonal cells.
func (t *square) Neighbors(c Coord) []Coord { return apply(c, square8Directions) }

func (t *square) Steps(c Coord) []Coord {
	if t.l.Diagonal {
		return apply(c, square8Directions)
	}
	return apply(c, square4Directions)
}

// Distance is Chebyshev with diagonals enabled, Manhattan otherwise.
func (t *square) Distance(a, b Coord) int {
	dq, dr := abs(a.Q-b.Q), abs(a.R-b.R)
	if t.l.Diagonal {
		return max(dq, dr)
	}
	return dq + dr
}

func (t *square) Area(c Coord, radius int) []Coord {
	var out []Coord
	for x := -radius; x <= radius; x++ {
		for y := -radius; y <= radius; y++ {
			if x == 0 && y == 0 {
				continue
			}
			out = append(out, Coord{Q: c.Q + x, R: c.R + y})
		}
	}
	return out
}

func (t *square) Corners() [][2]float64 {
	h := t.l.NodeSize / 2
	return [][2]float64{{+h, +h}, {+h, -h}, {-h, -h}, {-h, +h}}
}

package topology

import "math"

var sqrt3 = math.Sqrt(3)

// axialDirections is the canonical neighbor order for axial grids.
var axialDirections = []Coord{{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1}}

// Offset direction tables, indexed by the parity of the shifted axis
// (row for pointy-top, column for flat-top).
var (
	pointyOddDirections = [2][]Coord{
		{{+1, 0}, {0, -1}, {-1, -1}, {-1, 0}, {-1, +1}, {0, +1}},
		{{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {0, +1}, {+1, +1}},
	}
	pointyEvenDirections = [2][]Coord{
		{{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {0, +1}, {+1, +1}},
		{{+1, 0}, {0, -1}, {-1, -1}, {-1, 0}, {-1, +1}, {0, +1}},
	}
	flatOddDirections = [2][]Coord{
		{{+1, 0}, {+1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {0, +1}},
		{{+1, +1}, {+1, 0}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1}},
	}
	flatEvenDirections = [2][]Coord{
		{{+1, +1}, {+1, 0}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1}},
		{{+1, 0}, {+1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {0, +1}},
	}
)

// hexMetrics are the tile spacing values derived from the node size.
type hexMetrics struct {
	width, length float64 // tile extent along x and z
	hori, vert    float64 // distance between adjacent column / row centers
	offs          float64 // shift applied to alternating columns / rows
}

func newHexMetrics(size float64, o Orientation) hexMetrics {
	var m hexMetrics
	if o == FlatTop {
		m.width = size * 2
		m.length = sqrt3 * 0.5 * m.width
		m.hori = 0.75 * m.width
		m.vert = m.length
		m.offs = m.vert * 0.5
	} else {
		m.length = size * 2
		m.width = sqrt3 * 0.5 * m.length
		m.vert = 0.75 * m.length
		m.hori = m.width
		m.offs = m.hori * 0.5
	}
	return m
}

// hexCorners returns the six corner offsets of a hex with the given radius.
func hexCorners(size float64, o Orientation) [][2]float64 {
	out := make([][2]float64, 6)
	step := 2 * math.Pi / 6
	for i := range out {
		a := step * float64(i)
		if o == PointyTop {
			a = step * (float64(i) + 0.5)
		}
		out[i] = [2]float64{size * math.Cos(a), size * math.Sin(a)}
	}
	return out
}

// hexAxial implements Topology for axial coordinates. Coordinates range over
// [-W/2, W/2] × [-H/2, H/2]; cells with q+r outside [-W/2, W/2] are placeholders.
type hexAxial struct {
	l      Layout
	hw, hh int // half width / height
}

func newHexAxial(l Layout) *hexAxial {
	return &hexAxial{l: l, hw: l.Width / 2, hh: l.Height / 2}
}

func (t *hexAxial) Layout() Layout { return t.l }
func (t *hexAxial) Size() int      { return t.l.Width * t.l.Height }

func (t *hexAxial) Cells() []Coord {
	out := make([]Coord, 0, t.Size())
	for r := -t.hh; r <= t.hh; r++ {
		for q := -t.hw; q <= t.hw; q++ {
			out = append(out, Coord{Q: q, R: r})
		}
	}
	return out
}

func (t *hexAxial) inArray(c Coord) bool {
	return c.Q >= -t.hw && c.Q <= t.hw && c.R >= -t.hh && c.R <= t.hh
}

func (t *hexAxial) OnGrid(c Coord) bool {
	s := c.Q + c.R
	return t.inArray(c) && s >= -t.hw && s <= t.hw
}

func (t *hexAxial) Index(c Coord) int {
	if !t.inArray(c) {
		return -1
	}
	return (c.R+t.hh)*t.l.Width + (c.Q + t.hw)
}

func (t *hexAxial) LocalPosition(c Coord) (x, z float64) {
	s := t.l.NodeSize
	q, r := float64(c.Q), float64(c.R)
	if t.l.Orientation == PointyTop {
		return s * sqrt3 * (q + r*0.5), s * 1.5 * r
	}
	return s * 1.5 * q, s * sqrt3 * (r + q*0.5)
}

func (t *hexAxial) CoordAt(x, z float64) Coord {
	s := t.l.NodeSize
	var q, r float64
	if t.l.Orientation == FlatTop {
		q = 2.0 / 3.0 * x / s
		r = (-1.0/3.0*x + sqrt3/3.0*z) / s
	} else {
		q = (sqrt3/3.0*x - 1.0/3.0*z) / s
		r = 2.0 / 3.0 * z / s
	}
	return CubeToAxial(RoundCube(q, -q-r, r))
}

func (t *hexAxial) Neighbors(c Coord) []Coord { return apply(c, axialDirections) }
func (t *hexAxial) Steps(c Coord) []Coord     { return apply(c, axialDirections) }

func (t *hexAxial) Distance(a, b Coord) int {
	return (abs(a.Q-b.Q) + abs(a.R-b.R) + abs(a.Q+a.R-b.Q-b.R)) / 2
}

func (t *hexAxial) Area(c Coord, radius int) []Coord {
	var out []Coord
	cubeSpan(radius, func(x, z int) {
		out = append(out, Coord{Q: c.Q + x, R: c.R + z})
	})
	return out
}

func (t *hexAxial) Corners() [][2]float64 { return hexCorners(t.l.NodeSize, t.l.Orientation) }

// hexOffset implements Topology for odd/even offset coordinates on a
// rectangular array. Flat-top layouts shift columns, pointy-top layouts rows.
type hexOffset struct {
	l      Layout
	m      hexMetrics
	even   bool
	ox, oz float64 // position of cell (0,0) relative to the grid center
}

func newHexOffset(l Layout) *hexOffset {
	t := &hexOffset{l: l, m: newHexMetrics(l.NodeSize, l.Orientation), even: l.Kind == HexEvenOffset}
	t.ox = -float64(l.Width)*l.NodeSize/2 + l.NodeSize/2
	t.oz = -float64(l.Height)*l.NodeSize/2 + l.NodeSize/2
	if l.Orientation == PointyTop {
		t.ox *= sqrt3
		t.oz *= 1.5
	} else {
		t.ox *= 1.5
		t.oz *= sqrt3
	}
	return t
}

func (t *hexOffset) Layout() Layout { return t.l }
func (t *hexOffset) Size() int      { return t.l.Width * t.l.Height }

func (t *hexOffset) Cells() []Coord { return rectCells(t.l) }

func (t *hexOffset) OnGrid(c Coord) bool { return t.Index(c) >= 0 }

func (t *hexOffset) Index(c Coord) int { return rectIndex(t.l, c) }

// shifted reports whether the column/row with parity p carries the half-tile offset.
func (t *hexOffset) shifted(p int) bool {
	return (p&1 == 1) != t.even
}

func (t *hexOffset) LocalPosition(c Coord) (x, z float64) {
	x = t.m.hori * float64(c.Q)
	z = t.m.vert * float64(c.R)
	if t.l.Orientation == FlatTop {
		if t.shifted(c.Q) {
			z += t.m.offs
		}
	} else if t.shifted(c.R) {
		x += t.m.offs
	}
	return x + t.ox, z + t.oz
}

func (t *hexOffset) CoordAt(x, z float64) Coord {
	x -= t.ox
	z -= t.oz
	var q, r int
	if t.l.Orientation == FlatTop {
		q = int(math.RoundToEven(x / t.m.hori))
		if t.shifted(q) {
			z -= t.m.offs
		}
		r = int(math.RoundToEven(z / t.m.vert))
	} else {
		r = int(math.RoundToEven(z / t.m.vert))
		if t.shifted(r) {
			x -= t.m.offs
		}
		q = int(math.RoundToEven(x / t.m.hori))
	}
	return Coord{Q: q, R: r}
}

func (t *hexOffset) table(c Coord) []Coord {
	switch {
	case t.l.Orientation == PointyTop && t.even:
		return pointyEvenDirections[c.R&1]
	case t.l.Orientation == PointyTop:
		return pointyOddDirections[c.R&1]
	case t.even:
		return flatEvenDirections[c.Q&1]
	default:
		return flatOddDirections[c.Q&1]
	}
}

func (t *hexOffset) Neighbors(c Coord) []Coord { return apply(c, t.table(c)) }
func (t *hexOffset) Steps(c Coord) []Coord     { return apply(c, t.table(c)) }

func (t *hexOffset) Distance(a, b Coord) int {
	return CubeDistance(OffsetToCube(a, t.even, t.l.Orientation), OffsetToCube(b, t.even, t.l.Orientation))
}

// Area converts each cube delta to an offset delta. The conversion depends
// on the parity of the center's shifted axis.
func (t *hexOffset) Area(c Coord, radius int) []Coord {
	var out []Coord
	if t.l.Orientation == FlatTop {
		par := c.Q & 1
		if t.even {
			par = 1 - par
		}
		cubeSpan(radius, func(x, z int) {
			dr := z + (x-(x&1))/2
			if par == 1 {
				dr = z + (x+(x&1))/2
			}
			out = append(out, Coord{Q: c.Q + x, R: c.R + dr})
		})
		return out
	}
	par := c.R & 1
	if t.even {
		par = 1 - par
	}
	cubeSpan(radius, func(x, z int) {
		dq := x + (z-(z&1))/2
		if par == 1 {
			dq = x + (z+(z&1))/2
		}
		out = append(out, Coord{Q: c.Q + dq, R: c.R + z})
	})
	return out
}

func (t *hexOffset) Corners() [][2]float64 { return hexCorners(t.l.NodeSize, t.l.Orientation) }

// rectCells lists row-major coordinates for rectangular arrays.
func rectCells(l Layout) []Coord {
	out := make([]Coord, 0, l.Width*l.Height)
	for r := 0; r < l.Height; r++ {
		for q := 0; q < l.Width; q++ {
			out = append(out, Coord{Q: q, R: r})
		}
	}
	return out
}

// rectIndex maps (q,r) to a row-major index: r*Width + q.
func rectIndex(l Layout, c Coord) int {
	if c.Q < 0 || c.R < 0 || c.Q >= l.Width || c.R >= l.Height {
		return -1
	}
	return c.R*l.Width + c.Q
}

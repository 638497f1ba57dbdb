package topology

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for topology construction.
var (
	// ErrBadSize indicates a non-positive width or height.
	ErrBadSize = errors.New("topology: width and height must be positive")
	// ErrBadNodeSize indicates a non-positive node size.
	ErrBadNodeSize = errors.New("topology: node size must be positive")
	// ErrEvenAxialSize indicates an even width or height for an axial layout.
	ErrEvenAxialSize = errors.New("topology: axial layouts require odd width and height")
	// ErrUnknownKind indicates a Kind value outside the known set.
	ErrUnknownKind = errors.New("topology: unknown grid kind")
)

// Kind selects the tiling shape and coordinate scheme.
type Kind int

const (
	// Square is a rectangular grid of square tiles.
	Square Kind = iota
	// HexAxial is a hexagonal grid in axial coordinates, origin at the center.
	HexAxial
	// HexOddOffset is a rectangular hexagonal grid where odd rows/columns are shifted.
	HexOddOffset
	// HexEvenOffset is a rectangular hexagonal grid where even rows/columns are shifted.
	HexEvenOffset
)

var kindNames = map[Kind]string{
	Square:        "square",
	HexAxial:      "hex-axial",
	HexOddOffset:  "hex-odd-offset",
	HexEvenOffset: "hex-even-offset",
}

// String returns the config-file name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsHex reports whether k is one of the hexagonal kinds.
func (k Kind) IsHex() bool {
	return k == HexAxial || k == HexOddOffset || k == HexEvenOffset
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Orientation of hexagonal tiles. Ignored by square layouts.
type Orientation int

const (
	// FlatTop hexes have a flat side towards the top of the grid (columns are shifted).
	FlatTop Orientation = iota
	// PointyTop hexes have a corner towards the top of the grid (rows are shifted).
	PointyTop
)

// String returns "flat" or "pointy".
func (o Orientation) String() string {
	if o == PointyTop {
		return "pointy"
	}
	return "flat"
}

// ParseOrientation accepts "flat" or "pointy".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "flat", "":
		return FlatTop, nil
	case "pointy":
		return PointyTop, nil
	}
	return 0, fmt.Errorf("topology: unknown orientation %q", s)
}

// Coord is a logical column/row pair.
type Coord struct {
	Q, R int
}

// Add returns c offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Q: c.Q + d.Q, R: c.R + d.R}
}

// String formats the coordinate as "q,r".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Q, c.R)
}

// Vec3 is a position in grid or world space. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Layout holds the parameters a Topology is built from.
type Layout struct {
	Kind        Kind
	Orientation Orientation
	// Width and Height are the bounding array dimensions (columns × rows).
	Width, Height int
	// NodeSize is the tile size in world units (hex: center-to-corner radius).
	NodeSize float64
	// Diagonal enables 8-connectivity for traversal on square layouts.
	Diagonal bool
}

// Topology is the coordinate math for one Layout.
type Topology interface {
	// Layout returns the layout this topology was built from.
	Layout() Layout
	// Size is the length of the node array (Width*Height).
	Size() int
	// Cells returns the coordinate for every array slot, in array order.
	// Slots outside the valid region (see OnGrid) are included.
	Cells() []Coord
	// OnGrid reports whether c lies inside the array and inside the valid region.
	OnGrid(c Coord) bool
	// Index returns the array index of c, or -1 if c is outside the array.
	Index(c Coord) int
	// LocalPosition returns the ground-plane center of c relative to the grid origin.
	LocalPosition(c Coord) (x, z float64)
	// CoordAt maps a ground-plane position to the nearest coordinate. The result
	// may lie outside the array.
	CoordAt(x, z float64) Coord
	// Neighbors returns the full adjacency of c in canonical order (hex 6, square 8).
	Neighbors(c Coord) []Coord
	// Steps returns the traversal adjacency of c (hex 6, square 4 or 8).
	Steps(c Coord) []Coord
	// Distance is the integer step distance between a and b.
	Distance(a, b Coord) int
	// Area returns every coordinate within the given geometric radius of c,
	// excluding c itself. Results are not bounds-checked.
	Area(c Coord, radius int) []Coord
	// Corners returns the ground-plane corner offsets of a tile relative to its center.
	Corners() [][2]float64
}

// New validates l and returns the matching Topology.
// Axial layouts must already have odd dimensions; the grid package corrects
// even sizes before calling New.
func New(l Layout) (Topology, error) {
	if l.Width < 1 || l.Height < 1 {
		return nil, ErrBadSize
	}
	if !(l.NodeSize > 0) || math.IsInf(l.NodeSize, 0) {
		return nil, ErrBadNodeSize
	}
	switch l.Kind {
	case Square:
		return newSquare(l), nil
	case HexAxial:
		if l.Width%2 == 0 || l.Height%2 == 0 {
			return nil, ErrEvenAxialSize
		}
		return newHexAxial(l), nil
	case HexOddOffset, HexEvenOffset:
		return newHexOffset(l), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(l.Kind))
}

// apply returns c shifted by every offset in table.
func apply(c Coord, table []Coord) []Coord {
	out := make([]Coord, len(table))
	for i, d := range table {
		out[i] = c.Add(d)
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package grid

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/mapnav/topology"
)

// Sentinel errors for grid edits.
var (
	// ErrBadSize indicates a non-positive width or height.
	ErrBadSize = errors.New("grid: width and height must be positive")
	// ErrBadNodeSize indicates a non-positive or non-finite node size.
	ErrBadNodeSize = errors.New("grid: node size must be positive")
	// ErrBadHeightRange indicates MinHeight > MaxHeight or a non-positive HeightStep.
	ErrBadHeightRange = errors.New("grid: invalid height range")
	// ErrBadSurfaceRange indicates a surface probe whose end is not below its start.
	ErrBadSurfaceRange = errors.New("grid: surface probe end must be below start")
	// ErrLinkEndpoint indicates a link edit touching an out-of-range or placeholder node.
	ErrLinkEndpoint = errors.New("grid: link endpoint is not a grid node")
	// ErrSelfLink indicates a link edit from a node to itself.
	ErrSelfLink = errors.New("grid: cannot link a node to itself")
	// ErrBadIndex indicates a node edit addressing an out-of-range or placeholder index.
	ErrBadIndex = errors.New("grid: index is not a grid node")
)

// Node is one cell of the grid.
type Node struct {
	// Index is the position in the node array, or -1 for a placeholder.
	Index int
	// Q and R are the logical column and row (axial q/r or offset x/y).
	Q, R int
	// H is the elevation layer.
	H int
	// Local is the node center relative to the grid origin.
	Local topology.Vec3
	// ForcedInvalid excludes the node from every query.
	ForcedInvalid bool
}

// Valid reports whether n takes part in queries.
func (n Node) Valid() bool { return n.Index >= 0 && !n.ForcedInvalid }

// Coord returns the logical coordinate of n.
func (n Node) Coord() topology.Coord { return topology.Coord{Q: n.Q, R: n.R} }

// Config holds grid dimensions and height settings.
type Config struct {
	Kind        topology.Kind
	Orientation topology.Orientation
	// Width and Height are the bounding array dimensions (columns × rows).
	// Axial layouts require odd values; even values are decremented.
	Width, Height int
	// NodeSize is the tile size in world units.
	NodeSize float64
	// HeightStep is the world-space height of one elevation layer.
	HeightStep float64
	// MinHeight and MaxHeight bound node elevation layers.
	MinHeight, MaxHeight int
	// Diagonal enables 8-connectivity for traversal on square grids.
	Diagonal bool
	// Origin is the world position of the grid center.
	Origin topology.Vec3
}

// DefaultConfig returns a 10×10 square grid with unit tiles:
// Kind=Square, Width=Height=10, NodeSize=1, HeightStep=0.15, heights in [0,5].
func DefaultConfig() Config {
	return Config{
		Kind:       topology.Square,
		Width:      10,
		Height:     10,
		NodeSize:   1,
		HeightStep: 0.15,
		MinHeight:  0,
		MaxHeight:  5,
	}
}

func (c Config) layout() topology.Layout {
	return topology.Layout{
		Kind:        c.Kind,
		Orientation: c.Orientation,
		Width:       c.Width,
		Height:      c.Height,
		NodeSize:    c.NodeSize,
		Diagonal:    c.Diagonal,
	}
}

// ValidFunc is a per-query validity rule applied on top of structural validity.
type ValidFunc func(n Node) bool

// CostFunc returns the cost of stepping from one node to an adjacent one.
// A cost <= 0 blocks the step; 1 is nominal.
type CostFunc func(from, to Node) float64

// Change identifies what a grid-changed notification is about.
type Change int

const (
	// ChangeCreated is fired after the node array was (re)allocated.
	ChangeCreated Change = iota
	// ChangeUpdated is fired after heights or validity flags were edited in place.
	ChangeUpdated
)

// String returns "created" or "updated".
func (c Change) String() string {
	if c == ChangeCreated {
		return "created"
	}
	return "updated"
}

// HeightSource produces initial node heights on Create. Height returns a value
// in [0, 1] for the node at c with local ground position (x, z); the grid maps
// it onto [MinHeight, MaxHeight].
type HeightSource interface {
	Height(c topology.Coord, x, z float64) float64
}

// HeightFunc adapts a function to HeightSource.
type HeightFunc func(c topology.Coord, x, z float64) float64

// Height calls f.
func (f HeightFunc) Height(c topology.Coord, x, z float64) float64 { return f(c, x, z) }

// Surface is probed by AdjustToSurface. Probe casts a vertical ray at world
// (x, z) downward from top to bottom and returns the world height of the first
// hit, or ok == false when nothing lies in that span.
type Surface interface {
	Probe(x, z, top, bottom float64) (y float64, ok bool)
}

// Options configures a Grid beyond its Config.
type Options struct {
	// Logger receives warnings for corrected sizes and rejected edits. Default slog.Default().
	Logger *slog.Logger
	// OnChange is called after Create (ChangeCreated) and after in-place edits (ChangeUpdated).
	OnChange func(g *Grid, c Change)
	// OnNode is called once per created grid node, in array order.
	OnNode func(g *Grid, n Node)
	// Heights seeds node heights on Create. Nil keeps every node at MinHeight.
	Heights HeightSource
}

// Option represents a functional option for configuring a Grid.
type Option func(*Options)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithChangeHook registers the grid-changed callback.
func WithChangeHook(fn func(g *Grid, c Change)) Option {
	return func(o *Options) {
		o.OnChange = fn
	}
}

// WithNodeHook registers the node-created callback.
func WithNodeHook(fn func(g *Grid, n Node)) Option {
	return func(o *Options) {
		o.OnNode = fn
	}
}

// WithHeights sets the height source used by Create.
func WithHeights(src HeightSource) Option {
	return func(o *Options) {
		o.Heights = src
	}
}

// DefaultOptions returns Options with slog.Default() and no hooks.
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}

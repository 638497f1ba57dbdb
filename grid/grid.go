package grid

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/mapnav/topology"
)

// Grid owns the node array, its topology and the link table.
type Grid struct {
	cfg   Config
	topo  topology.Topology
	nodes []Node
	links linkTable
	opts  Options
	log   *slog.Logger
}

// New builds a grid from cfg. See Create for validation rules.
func New(cfg Config, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := &Grid{opts: o, log: o.Logger}
	if err := g.Create(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// Create (re)allocates the node array for cfg, clears the link table and fires
// ChangeCreated. Every previously returned index is invalidated.
//
// Errors:
//
//   - ErrBadSize, ErrBadNodeSize, ErrBadHeightRange for invalid dimensions.
//
// On error the grid is left unchanged.
func (g *Grid) Create(cfg Config) error {
	if err := g.build(cfg); err != nil {
		return err
	}
	g.notifyCreated()
	return nil
}

// build validates cfg and replaces the node array without firing hooks.
func (g *Grid) build(cfg Config) error {
	cfg, err := g.normalize(cfg)
	if err != nil {
		g.log.Error("grid create rejected", "err", err)
		return err
	}
	topo, err := topology.New(cfg.layout())
	if err != nil {
		return fmt.Errorf("grid: build topology: %w", err)
	}

	nodes := make([]Node, topo.Size())
	for i, c := range topo.Cells() {
		x, z := topo.LocalPosition(c)
		n := Node{Index: -1, Q: c.Q, R: c.R, Local: topology.Vec3{X: x, Z: z}}
		if topo.OnGrid(c) {
			n.Index = i
			n.H = initialHeight(cfg, g.opts.Heights, c, x, z)
			n.Local.Y = float64(n.H) * cfg.HeightStep
		}
		nodes[i] = n
	}

	g.cfg, g.topo, g.nodes = cfg, topo, nodes
	g.links = newLinkTable()
	g.log.Debug("grid created",
		"kind", cfg.Kind.String(),
		"orientation", cfg.Orientation.String(),
		"width", cfg.Width,
		"height", cfg.Height,
		"nodes", len(nodes))
	return nil
}

// notifyCreated fires the node hook for every grid node, then ChangeCreated.
func (g *Grid) notifyCreated() {
	if g.opts.OnNode != nil {
		for _, n := range g.nodes {
			if n.Index >= 0 {
				g.opts.OnNode(g, n)
			}
		}
	}
	g.changed(ChangeCreated)
}

// normalize validates cfg and applies the even-axial correction.
func (g *Grid) normalize(cfg Config) (Config, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return cfg, fmt.Errorf("%w: %dx%d", ErrBadSize, cfg.Width, cfg.Height)
	}
	if !(cfg.NodeSize > 0) || math.IsInf(cfg.NodeSize, 0) {
		return cfg, fmt.Errorf("%w: %v", ErrBadNodeSize, cfg.NodeSize)
	}
	if !(cfg.HeightStep > 0) || cfg.MinHeight > cfg.MaxHeight {
		return cfg, fmt.Errorf("%w: step=%v min=%d max=%d", ErrBadHeightRange, cfg.HeightStep, cfg.MinHeight, cfg.MaxHeight)
	}
	if cfg.Kind == topology.HexAxial {
		if cfg.Width%2 == 0 {
			g.log.Warn("axial grid width must be odd, decrementing", "width", cfg.Width)
			cfg.Width--
		}
		if cfg.Height%2 == 0 {
			g.log.Warn("axial grid height must be odd, decrementing", "height", cfg.Height)
			cfg.Height--
		}
		if cfg.Width < 1 || cfg.Height < 1 {
			return cfg, fmt.Errorf("%w: %dx%d", ErrBadSize, cfg.Width, cfg.Height)
		}
	}
	return cfg, nil
}

// initialHeight maps a HeightSource sample in [0,1] onto [MinHeight, MaxHeight].
// Every layer gets an equal share of the unit interval.
func initialHeight(cfg Config, src HeightSource, c topology.Coord, x, z float64) int {
	if src == nil {
		return cfg.MinHeight
	}
	v := src.Height(c, x, z)
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	span := cfg.MaxHeight - cfg.MinHeight
	return clamp(cfg.MinHeight+int(math.Floor(v*float64(span+1))), cfg.MinHeight, cfg.MaxHeight)
}

func (g *Grid) changed(c Change) {
	if g.opts.OnChange != nil {
		g.opts.OnChange(g, c)
	}
}

// inRange reports whether idx addresses a non-placeholder slot.
func (g *Grid) inRange(idx int) bool {
	return idx >= 0 && idx < len(g.nodes) && g.nodes[idx].Index >= 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

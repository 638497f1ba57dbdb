package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapnav/grid"
	"github.com/katalvlaran/mapnav/topology"
)

// surfaceFunc adapts a function to grid.Surface for tests.
type surfaceFunc func(x, z float64) (float64, bool)

func (f surfaceFunc) Probe(x, z, top, bottom float64) (float64, bool) {
	y, ok := f(x, z)
	if !ok || y > top || y < bottom {
		return 0, false
	}
	return y, true
}

func heights(g *grid.Grid) []int {
	var out []int
	for _, n := range g.Nodes() {
		out = append(out, n.H)
	}
	return out
}

// TestChangeHeight clamps to the configured range and updates local Y.
func TestChangeHeight(t *testing.T) {
	g := mustGrid(t, squareConfig(2, 2, false))
	g.ChangeHeight(3)
	assert.Equal(t, []int{3, 3, 3, 3}, heights(g))
	g.ChangeHeight(4)
	assert.Equal(t, []int{5, 5, 5, 5}, heights(g))
	n, _ := g.Node(0)
	assert.InDelta(t, 5*0.15, n.Local.Y, 1e-12)
	g.ChangeHeight(-10)
	assert.Equal(t, []int{0, 0, 0, 0}, heights(g))

	require.NoError(t, g.SetForcedInvalid(2, true))
	g.ChangeHeight(2)
	assert.Equal(t, []int{2, 2, 0, 2}, heights(g), "forced-invalid nodes are skipped")
}

// TestSmoothOut moves each node one layer towards its steepest neighbor,
// in array order.
func TestSmoothOut(t *testing.T) {
	g := mustGrid(t, squareConfig(3, 1, false))
	require.NoError(t, g.SetHeight(2, 4))
	g.SmoothOut()
	assert.Equal(t, []int{0, 1, 3}, heights(g))
	g.SmoothOut()
	assert.Equal(t, []int{1, 2, 2}, heights(g))

	// forced-invalid nodes are left alone
	require.NoError(t, g.SetForcedInvalid(0, true))
	require.NoError(t, g.SetHeight(1, 5))
	g.SmoothOut()
	assert.Equal(t, []int{1, 4, 3}, heights(g))
}

// TestSetHeight_Errors rejects bad indices.
func TestSetHeight_Errors(t *testing.T) {
	g := mustGrid(t, hexConfig(topology.HexAxial, topology.FlatTop, 5, 5))
	require.ErrorIs(t, g.SetHeight(-1, 2), grid.ErrBadIndex)
	require.ErrorIs(t, g.SetHeight(0, 2), grid.ErrBadIndex, "placeholder")
	require.ErrorIs(t, g.SetForcedInvalid(25, true), grid.ErrBadIndex)

	require.NoError(t, g.SetHeight(12, 99))
	n, _ := g.Node(12)
	assert.Equal(t, 5, n.H)
}

// TestAdjustToSurface_Plane fits every node to a flat surface.
func TestAdjustToSurface_Plane(t *testing.T) {
	cfg := squareConfig(3, 3, false)
	cfg.MaxHeight = 10
	cfg.Origin = topology.Vec3{Y: 0.5}
	g := mustGrid(t, cfg)

	plane := surfaceFunc(func(_, _ float64) (float64, bool) { return 1.5, true })
	require.NoError(t, g.AdjustToSurface(plane, 10, -10, true, 0))
	for _, n := range g.Nodes() {
		assert.Equal(t, 7, n.H, "round(1.0 / 0.15)")
		assert.InDelta(t, 1.0, n.Local.Y, 1e-12)
		assert.False(t, n.ForcedInvalid)
	}

	// below the probe span counts as a miss
	require.NoError(t, g.AdjustToSurface(plane, 1, -10, false, 0))
	for _, n := range g.Nodes() {
		assert.Equal(t, 0, n.H)
		assert.False(t, n.ForcedInvalid)
	}
}

// TestAdjustToSurface_Precision covers corner probes and averaging.
func TestAdjustToSurface_Precision(t *testing.T) {
	cfg := squareConfig(3, 1, false)
	cfg.MaxHeight = 20
	cfg.HeightStep = 0.1
	// node centers at x = -1, 0, 1; corners at ±0.5
	ledge := surfaceFunc(func(x, _ float64) (float64, bool) { return 1, x < 0.4 })

	g := mustGrid(t, cfg)
	require.NoError(t, g.AdjustToSurface(ledge, 5, -5, true, 0))
	assert.Equal(t, []bool{true, true, false}, validity(g))

	require.NoError(t, g.AdjustToSurface(ledge, 5, -5, true, 1))
	assert.Equal(t, []bool{true, false, false}, validity(g), "a corner of the middle node misses")
	n, _ := g.Node(1)
	assert.Equal(t, 0, n.H)

	bowl := surfaceFunc(func(x, z float64) (float64, bool) { return 1 + x*x + z*z, true })
	require.NoError(t, g.AdjustToSurface(bowl, 5, -5, false, 1))
	n, _ = g.Node(1)
	assert.InDelta(t, 1.0, n.Local.Y, 1e-12)
	assert.Equal(t, 10, n.H)

	require.NoError(t, g.AdjustToSurface(bowl, 5, -5, false, 2))
	n, _ = g.Node(1)
	assert.InDelta(t, 1.4, n.Local.Y, 1e-12, "(1 + 4·1.5) / 5")
	assert.Equal(t, 14, n.H)
}

// TestAdjustToSurface_Errors leaves the grid untouched on bad ranges.
func TestAdjustToSurface_Errors(t *testing.T) {
	updates := 0
	g := mustGrid(t, squareConfig(2, 2, false), grid.WithChangeHook(func(_ *grid.Grid, c grid.Change) {
		if c == grid.ChangeUpdated {
			updates++
		}
	}))
	plane := surfaceFunc(func(_, _ float64) (float64, bool) { return 0, true })
	require.ErrorIs(t, g.AdjustToSurface(plane, 0, 0, true, 0), grid.ErrBadSurfaceRange)
	require.ErrorIs(t, g.AdjustToSurface(plane, -1, 3, true, 0), grid.ErrBadSurfaceRange)
	require.ErrorIs(t, g.AdjustToSurface(nil, 3, -1, true, 0), grid.ErrBadSurfaceRange)
	assert.Zero(t, updates)
}

func validity(g *grid.Grid) []bool {
	var out []bool
	for _, n := range g.Nodes() {
		out = append(out, n.Valid())
	}
	return out
}

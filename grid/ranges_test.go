package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapnav/grid"
	"github.com/katalvlaran/mapnav/topology"
)

//----------------------------------------------------------------------------//
// Reachable
//----------------------------------------------------------------------------//

// TestReachable_SquareScenario: 5×5 square, 4-connected, center 12, radius 2,
// uniform cost. Every node at Manhattan distance 1 or 2 is returned.
func TestReachable_SquareScenario(t *testing.T) {
	g := mustGrid(t, squareConfig(5, 5, false))
	got := g.Reachable(12, 2, nil)
	assert.ElementsMatch(t, []int{7, 11, 13, 17, 2, 6, 8, 10, 14, 16, 18, 22}, got)
	for _, idx := range got {
		assert.LessOrEqual(t, g.Distance(12, idx), 2)
		assert.NotEqual(t, 12, idx)
	}
}

// TestReachable_AllBlocked yields nothing when every step costs 0.
func TestReachable_AllBlocked(t *testing.T) {
	for name, cfg := range allConfigs() {
		t.Run(name, func(t *testing.T) {
			g := mustGrid(t, cfg)
			blocked := func(_, _ grid.Node) float64 { return 0 }
			for i := 0; i < g.Len(); i++ {
				if g.ValidIndex(i) {
					require.Empty(t, g.Reachable(i, 3, blocked))
				}
			}
		})
	}
}

// TestReachable_Costs checks weighted steps, the radius boundary and the
// strictly-lower re-expansion rule.
func TestReachable_Costs(t *testing.T) {
	g := mustGrid(t, hexConfig(topology.HexAxial, topology.FlatTop, 7, 7))
	center := g.NodeIndex(0, 0)

	double := func(_, _ grid.Node) float64 { return 2 }
	assert.ElementsMatch(t, g.Neighbors(center, false, false, nil), g.Reachable(center, 3, double))
	assert.Empty(t, g.Reachable(center, 1, double))

	// uniform cost matches the geometric range
	assert.ElementsMatch(t, g.Within(center, 3, false, nil), g.Reachable(center, 3, nil))

	// entering the east neighbor costs 3, which no route within radius 2 can afford
	east := g.NodeIndex(1, 0)
	mud := func(_, to grid.Node) float64 {
		if to.Index == east {
			return 3
		}
		return 1
	}
	got := g.Reachable(center, 2, mud)
	assert.NotContains(t, got, east)
	assert.NotContains(t, got, g.NodeIndex(2, 0), "only reachable through the mud")
	assert.Contains(t, got, g.NodeIndex(2, -1))
	assert.Len(t, got, 18-2)
}

// TestReachable_BadInput returns an empty, non-nil slice.
func TestReachable_BadInput(t *testing.T) {
	g := mustGrid(t, squareConfig(3, 3, false))
	got := g.Reachable(-1, 3, nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, g.Reachable(4, 0, nil))
}

// TestReachable_ExtraData filters with a side table, as a game would for occupancy.
func TestReachable_ExtraData(t *testing.T) {
	g := mustGrid(t, squareConfig(5, 1, false))
	occupied := grid.NewExtra[bool]()
	occupied.Set(3, true)
	free := occupied.Valid(func(v bool) bool { return !v }, true)
	cost := func(_, to grid.Node) float64 {
		if !free(to) {
			return 0
		}
		return 1
	}
	assert.ElementsMatch(t, []int{1, 2}, g.Reachable(0, 4, cost))
}

//----------------------------------------------------------------------------//
// Within / Ring / Border
//----------------------------------------------------------------------------//

// TestWithin_RadiusZero returns only the center when requested.
func TestWithin_RadiusZero(t *testing.T) {
	g := mustGrid(t, hexConfig(topology.HexOddOffset, topology.PointyTop, 5, 5))
	assert.Equal(t, []int{12}, g.Within(12, 0, true, nil))
	got := g.Within(12, 0, false, nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, g.Within(12, -4, true, func(grid.Node) bool { return false }))
	assert.Nil(t, g.Within(99, 2, true, nil))
}

// TestWithin_Counts checks hex and square range sizes away from edges.
func TestWithin_Counts(t *testing.T) {
	hex := mustGrid(t, hexConfig(topology.HexAxial, topology.PointyTop, 7, 7))
	center := hex.NodeIndex(0, 0)
	assert.Len(t, hex.Within(center, 2, false, nil), 18)
	assert.Len(t, hex.Within(center, 3, true, nil), 37)
	for _, id := range hex.Within(center, 3, false, nil) {
		assert.LessOrEqual(t, hex.Distance(center, id), 3)
	}

	sq := mustGrid(t, squareConfig(7, 7, false))
	assert.Len(t, sq.Within(24, 2, false, nil), 24)
	assert.Len(t, sq.Within(0, 2, true, nil), 9, "clipped at the corner")
}

// TestRing_RadiusOneIsNeighbors is the ring/neighbor identity on every topology.
func TestRing_RadiusOneIsNeighbors(t *testing.T) {
	for name, cfg := range allConfigs() {
		t.Run(name, func(t *testing.T) {
			g := mustGrid(t, cfg)
			for i := 0; i < g.Len(); i++ {
				if g.ValidIndex(i) {
					require.Equal(t, g.Neighbors(i, false, false, nil), g.Ring(i, 1, 1, nil))
				}
			}
		})
	}
}

// TestRing_Band checks an annulus and the clamping of radius and width.
func TestRing_Band(t *testing.T) {
	g := mustGrid(t, hexConfig(topology.HexAxial, topology.FlatTop, 9, 9))
	center := g.NodeIndex(0, 0)

	ring := g.Ring(center, 2, 1, nil)
	assert.Len(t, ring, 12)
	for _, id := range ring {
		assert.Equal(t, 2, g.Distance(center, id))
	}

	band := g.Ring(center, 2, 2, nil)
	assert.Len(t, band, 12+18)
	for _, id := range band {
		d := g.Distance(center, id)
		assert.True(t, d == 2 || d == 3, "distance %d", d)
	}

	assert.Equal(t, g.Neighbors(center, false, false, nil), g.Ring(center, 0, -1, nil))
}

// TestBorder finds the perimeter of accepted sets.
func TestBorder(t *testing.T) {
	hex := mustGrid(t, hexConfig(topology.HexAxial, topology.FlatTop, 7, 7))
	center := hex.NodeIndex(0, 0)
	area := hex.Within(center, 1, true, nil)
	assert.ElementsMatch(t, hex.Neighbors(center, false, false, nil), hex.Border(area, nil))

	// every node of a full square grid except the center touches the edge
	sq := mustGrid(t, squareConfig(3, 3, false))
	all := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, sq.Border(all, nil))

	// a callback-rejected neighbor also makes a border
	notFive := func(n grid.Node) bool { return n.Index != 5 }
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, sq.Border(all, notFive))
	assert.Empty(t, sq.Border(nil, nil))
}

//----------------------------------------------------------------------------//
// Regions
//----------------------------------------------------------------------------//

// TestRegions splits a grid along a wall of forced-invalid nodes.
func TestRegions(t *testing.T) {
	g := mustGrid(t, squareConfig(5, 5, true))
	require.Len(t, g.Regions(nil), 1)

	for r := 0; r < 5; r++ {
		require.NoError(t, g.SetForcedInvalid(g.NodeIndex(2, r), true))
	}
	regions := g.Regions(nil)
	require.Len(t, regions, 2)
	assert.Len(t, regions[0], 10)
	assert.Len(t, regions[1], 10)
	assert.Equal(t, 0, regions[0][0])
	assert.Equal(t, 3, regions[1][0])

	// callback splits the left half again
	noRow2 := func(n grid.Node) bool { return n.R != 2 }
	assert.Len(t, g.Regions(noRow2), 4)
}

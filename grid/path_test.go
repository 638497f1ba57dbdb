package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapnav/astar"
	"github.com/katalvlaran/mapnav/grid"
	"github.com/katalvlaran/mapnav/topology"
)

// TestPath_StraightRow: 7×7 square, 4-connected, (0,0) → (3,0) is the straight row.
func TestPath_StraightRow(t *testing.T) {
	g := mustGrid(t, squareConfig(7, 7, false))
	path := g.Path(g.NodeIndex(0, 0), g.NodeIndex(3, 0), nil)
	require.Len(t, path, 3)
	assert.Equal(t, []int{g.NodeIndex(1, 0), g.NodeIndex(2, 0), g.NodeIndex(3, 0)}, path)
}

// TestPath_LengthEqualsDistance holds on obstruction-free grids of every topology.
func TestPath_LengthEqualsDistance(t *testing.T) {
	for name, cfg := range allConfigs() {
		t.Run(name, func(t *testing.T) {
			g := mustGrid(t, cfg)
			var valid []int
			for i := 0; i < g.Len(); i++ {
				if g.ValidIndex(i) {
					valid = append(valid, i)
				}
			}
			for _, a := range valid {
				for _, b := range valid {
					path := g.Path(a, b, nil)
					require.Len(t, path, g.Distance(a, b), "%d -> %d", a, b)
					if a == b {
						continue
					}
					require.Equal(t, b, path[len(path)-1])
					prev := a
					for _, step := range path {
						require.Contains(t, g.StepNeighbors(prev), step)
						prev = step
					}
				}
			}
		})
	}
}

// TestPath_Empty covers start == goal, invalid endpoints and unreachable goals.
func TestPath_Empty(t *testing.T) {
	g := mustGrid(t, squareConfig(5, 5, false))
	assert.Empty(t, g.Path(12, 12, nil))
	assert.Empty(t, g.Path(-1, 12, nil))
	assert.Empty(t, g.Path(12, 25, nil))

	require.NoError(t, g.SetForcedInvalid(14, true))
	assert.Empty(t, g.Path(12, 14, nil))

	// wall across column 2
	wall := func(_, to grid.Node) float64 {
		if to.Q == 2 {
			return 0
		}
		return 1
	}
	path := g.Path(g.NodeIndex(0, 0), g.NodeIndex(4, 4), wall)
	require.NotNil(t, path)
	assert.Empty(t, path)
}

// TestPath_FastPath covers the direct-neighbor shortcut and its fall-through.
func TestPath_FastPath(t *testing.T) {
	g := mustGrid(t, squareConfig(3, 3, false))

	cheap := func(_, _ grid.Node) float64 { return 0.5 }
	assert.Equal(t, []int{1}, g.Path(0, 1, cheap), "sub-nominal cost falls through to the full search")

	// a blocked direct edge forces a detour
	blocked := func(from, to grid.Node) float64 {
		if (from.Index == 0 && to.Index == 1) || (from.Index == 1 && to.Index == 0) {
			return 0
		}
		return 1
	}
	path := g.Path(0, 1, blocked)
	require.Len(t, path, 3)
	assert.Equal(t, []int{3, 4, 1}, path)
}

// TestPath_Links routes around a wall link and through an open door.
func TestPath_Links(t *testing.T) {
	g := mustGrid(t, squareConfig(3, 3, false))
	const (
		door = 0
		wall = 1
	)
	require.NoError(t, g.SetLink(0, 1, wall))
	cost := grid.BlockedByLinks(g, nil)

	path := g.Path(0, 2, cost)
	require.Len(t, path, 4)
	assert.Equal(t, 3, path[0])
	assert.Equal(t, 2, path[3])

	require.NoError(t, g.SetLink(0, 1, door))
	assert.Equal(t, []int{1, 2}, g.Path(0, 2, cost))
}

// TestPath_PrefersCheaperRoute takes a longer route to avoid expensive tiles.
func TestPath_PrefersCheaperRoute(t *testing.T) {
	g := mustGrid(t, hexConfig(topology.HexAxial, topology.FlatTop, 7, 7))
	start, goal := g.NodeIndex(-2, 0), g.NodeIndex(2, 0)
	swamp := func(_, to grid.Node) float64 {
		if to.R == 0 && to.Q > -2 && to.Q < 2 {
			return 5
		}
		return 1
	}
	path := g.Path(start, goal, swamp)
	require.NotEmpty(t, path)
	assert.Equal(t, goal, path[len(path)-1])
	total := 0.0
	prev, _ := g.Node(start)
	for i, id := range path {
		n, _ := g.Node(id)
		if i < len(path)-1 {
			assert.NotEqual(t, 0, n.R, "path must avoid the swamp row")
		}
		total += swamp(prev, n)
		prev = n
	}
	assert.Equal(t, 5.0, total)
}

// TestPath_MaxCost abandons routes over budget.
func TestPath_MaxCost(t *testing.T) {
	g := mustGrid(t, squareConfig(7, 1, false))
	assert.Len(t, g.Path(0, 6, nil, astar.WithMaxCost(6)), 6)
	assert.Empty(t, g.Path(0, 6, nil, astar.WithMaxCost(5)))
}

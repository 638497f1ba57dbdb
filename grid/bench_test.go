package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mapnav/grid"
	"github.com/katalvlaran/mapnav/topology"
)

// benchGrid builds a 101×101 axial grid with random heights.
func benchGrid(b *testing.B) *grid.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	src := grid.HeightFunc(func(topology.Coord, float64, float64) float64 { return rng.Float64() })
	cfg := grid.DefaultConfig()
	cfg.Kind = topology.HexAxial
	cfg.Width, cfg.Height = 101, 101
	g, err := grid.New(cfg, grid.WithLogger(quiet()), grid.WithHeights(src))
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	return g
}

// climbCost blocks steps up more than one layer.
func climbCost(from, to grid.Node) float64 {
	if to.H-from.H > 1 {
		return 0
	}
	return 1
}

// BenchmarkPath measures A* across a 101×101 axial grid.
// Complexity: O(V log V)
func BenchmarkPath(b *testing.B) {
	g := benchGrid(b)
	start, goal := g.NodeIndex(-25, 0), g.NodeIndex(25, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Path(start, goal, climbCost)
	}
}

// BenchmarkReachable measures the depth-first range search at radius 6.
func BenchmarkReachable(b *testing.B) {
	g := benchGrid(b)
	center := g.NodeIndex(0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Reachable(center, 6, climbCost)
	}
}

// BenchmarkRegions measures connected-region labelling over the whole grid.
// Complexity: O(V·6)
func BenchmarkRegions(b *testing.B) {
	g := benchGrid(b)
	low := func(n grid.Node) bool { return n.H < 3 }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regions(low)
	}
}

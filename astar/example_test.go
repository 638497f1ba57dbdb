package astar_test

import (
	"fmt"

	"github.com/katalvlaran/mapnav/astar"
)

// ExamplePath searches a 4×3 lattice with a hole in the middle row.
func ExamplePath() {
	g := lattice{w: 4, h: 3, holes: map[int]bool{5: true, 6: true}}
	// 0  1  2  3
	// 4  #  #  7
	// 8  9 10 11
	fmt.Println(astar.Path(g, 4, 7))
	fmt.Println(astar.Path(g, 4, 7, astar.WithCost(func(_, to int) float64 {
		if to >= 8 {
			return 3 // bottom row is marsh
		}
		return 1
	})))
	// Output:
	// [8 9 10 11 7]
	// [0 1 2 3 7]
}

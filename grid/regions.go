package grid

// Regions finds all connected groups of valid nodes that also pass valid,
// under traversal connectivity. Each region lists node indices in BFS order;
// regions are ordered by their lowest index.
//
// Time:   O(V·d), where d = 6 for hex and 4 or 8 for square.
// Memory: O(V) for visited flags and output.
func (g *Grid) Regions(valid ValidFunc) [][]int {
	seen := make([]bool, len(g.nodes))
	var regions [][]int

	for i0 := range g.nodes {
		if seen[i0] || !g.accept(i0, valid) {
			continue
		}
		// BFS to collect region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.StepNeighbors(queue[qi]) {
				if seen[v] || !g.accept(v, valid) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

package grid

// ConnectedComponents finds all contiguous regions of traversable cells
// according to mode. Each component is a slice of row-major cell indices in
// BFS discovery order; components are ordered by their lowest index.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents(mode Movement) [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0, c := range g.cells {
		if !c.Traversable || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range g.Neighbors(queue[qi], mode) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Region labels every cell with the number of its component (as returned by
// ConnectedComponents) or -1 for walls.
func (g *Grid) Region(mode Movement) []int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	for id, comp := range g.ConnectedComponents(mode) {
		for _, i := range comp {
			labels[i] = id
		}
	}
	return labels
}

// Reachable reports whether b can be reached from a by moving only through
// traversable cells. Both cells must be traversable.
func (g *Grid) Reachable(a, b int, mode Movement) bool {
	if !g.Walkable(a) || !g.Walkable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, len(g.cells))
	seen[a] = true
	queue := []int{a}
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range g.Neighbors(queue[qi], mode) {
			if v == b {
				return true
			}
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return false
}

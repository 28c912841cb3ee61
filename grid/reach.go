package grid

// Reachable returns every non-wall cell connected to from, in BFS order
// (neighbours expanded up, down, left, right). Returns nil if from is out
// of bounds or a wall.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Reachable(from Pos) []Pos {
	if !g.InBounds(from) || g.Cell(from).IsWall {
		return nil
	}
	seen := make([]bool, len(g.cells))
	i0 := g.Index(from)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		for _, v := range g.Neighbors(u) {
			vi := g.Index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	out := make([]Pos, len(queue))
	for i, idx := range queue {
		out[i] = g.Coordinate(idx)
	}
	return out
}

// Distances returns the edge-count distance from from to every cell,
// indexed row-major. Walls and unreachable cells hold Unknown.
//
// It reads only the static wall flags, so it can check a search result
// on the same grid the search has mutated.
//
// Time:   O(R·C).
// Memory: O(R·C).
func (g *Grid) Distances(from Pos) []int {
	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = Unknown
	}
	if !g.InBounds(from) || g.Cell(from).IsWall {
		return dist
	}
	i0 := g.Index(from)
	dist[i0] = 0
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range g.Neighbors(g.Coordinate(u)) {
			vi := g.Index(v)
			if dist[vi] == Unknown {
				dist[vi] = dist[u] + 1
				queue = append(queue, vi)
			}
		}
	}

	return dist
}

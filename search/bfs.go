package search

import "github.com/katalvlaran/gridpath/grid"

// bfs is a FIFO traversal. A cell is flagged IsVisited and given its
// predecessor when it is enqueued, so it enters the queue at most once and the
// first path to the goal has the fewest edges.
func bfs(w *walker) bool {
	g := w.g
	g.Cell(w.start).IsVisited = true
	queue := make([]grid.Pos, 1, g.Len())
	queue[0] = w.start

	for qi := 0; qi < len(queue); qi++ {
		p := queue[qi]
		if !w.record(p) {
			return false
		}
		if p == w.goal {
			return true
		}

		for _, n := range g.Neighbors(p) {
			nc := g.Cell(n)
			if !nc.IsVisited {
				nc.IsVisited = true
				nc.Previous = p
				queue = append(queue, n)
			}
		}
	}

	return false
}

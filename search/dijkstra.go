package search

import "container/heap"

// dijkstra is uniform-cost search over unit edges.
//
// The next cell is always the unfinalised one with the lowest Distance.
// Ties go to the cell that got its Distance in the earliest round, then to
// the lowest (row, col). Cells never reached keep Distance == grid.Unknown
// and never enter the heap, so an empty heap means every remaining cell is
// unreachable and the search stops.
//
// Relaxation updates a neighbour only on strict improvement, setting its
// Distance and Previous together.
func dijkstra(w *walker) bool {
	g := w.g
	g.Cell(w.start).Distance = 0

	pq := make(distanceQueue, 0, g.Len())
	heap.Push(&pq, queueItem{idx: g.Index(w.start), dist: 0, round: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(queueItem)
		p := g.Coordinate(item.idx)
		c := g.Cell(p)

		// stale entry: already finalised or superseded by a shorter distance
		if c.IsVisited || item.dist != c.Distance {
			continue
		}
		if c.IsWall {
			continue
		}

		c.IsVisited = true
		if !w.record(p) {
			return false
		}
		if p == w.goal {
			return true
		}

		for _, n := range g.Neighbors(p) {
			nc := g.Cell(n)
			if nc.IsVisited {
				continue
			}
			if d := c.Distance + 1; d < nc.Distance {
				nc.Distance = d
				nc.Previous = p
				heap.Push(&pq, queueItem{idx: g.Index(n), dist: d, round: len(w.order)})
			}
		}
	}

	return false
}

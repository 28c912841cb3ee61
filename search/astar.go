package search

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/gridpath/grid"
)

// astar is best-first search on FCost = GCost + HCost, with HCost the
// Manhattan distance to the goal. The heuristic is admissible and consistent
// on a 4-connected unit grid, so the first time the goal is expanded its path
// is shortest.
//
// The open set is a slice stably re-sorted by FCost before every pop: equal
// FCost entries keep their relative order from the previous round, new
// entries join at the back. Membership is tracked by an index-aligned flag
// slice rather than a scan of the open set.
func astar(w *walker) bool {
	g := w.g
	s := g.Cell(w.start)
	s.GCost = 0
	s.HCost = grid.Manhattan(w.start, w.goal)
	s.FCost = s.GCost + s.HCost

	open := []grid.Pos{w.start}
	inOpen := make([]bool, g.Len())
	inOpen[g.Index(w.start)] = true

	byFCost := func(a, b grid.Pos) int {
		return cmp.Compare(g.Cell(a).FCost, g.Cell(b).FCost)
	}

	for len(open) > 0 {
		slices.SortStableFunc(open, byFCost)
		p := open[0]
		open = open[1:]
		inOpen[g.Index(p)] = false

		c := g.Cell(p)
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
			tentative := c.GCost + 1
			ni := g.Index(n)
			if !inOpen[ni] {
				open = append(open, n)
				inOpen[ni] = true
			} else if tentative >= nc.GCost {
				continue
			}
			nc.Previous = p
			nc.GCost = tentative
			nc.HCost = grid.Manhattan(n, w.goal)
			nc.FCost = nc.GCost + nc.HCost
		}
	}

	return false
}

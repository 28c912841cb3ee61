package search

import "github.com/katalvlaran/gridpath/grid"

// dfs is a LIFO traversal. Every unvisited neighbour is pushed with its
// predecessor set at push time, even if it is already on the stack; the
// visited check on pop discards duplicates. The last push of a cell is the
// one popped first, so its final Previous is always the cell that expanded it.
func dfs(w *walker) bool {
	g := w.g
	stack := []grid.Pos{w.start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := g.Cell(p)
		if c.IsVisited || c.IsWall {
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
			if !nc.IsVisited {
				nc.Previous = p
				stack = append(stack, n)
			}
		}
	}

	return false
}

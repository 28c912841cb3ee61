package search

import (
	"slices"

	"github.com/katalvlaran/gridpath/grid"
)

// Reconstruct follows Previous links backwards from goal and returns the
// cells in start→goal order. A cell without a predecessor ends the walk, so
// an unreached goal yields a single-cell path; Run only calls it once the
// goal has been visited.
//
// The walk is capped at g.Len() cells, so a stale predecessor cycle left by
// a grid that was not reset cannot loop forever.
// Complexity: O(path length).
func Reconstruct(g *grid.Grid, goal grid.Pos) []grid.Pos {
	if g.Cell(goal) == nil {
		return nil
	}
	var path []grid.Pos
	for p := goal; p != grid.NoPos && len(path) < g.Len(); p = g.Cell(p).Previous {
		path = append(path, p)
	}
	slices.Reverse(path)

	return path
}

// replay reveals the path cell by cell: intermediate cells are flagged
// IsPath, and every step reports a running PathLength and pauses twice the
// search delay.
func (w *walker) replay(path []grid.Pos) {
	for i, p := range path {
		c := w.g.Cell(p)
		if !c.IsStart && !c.IsEnd {
			c.IsPath = true
		}
		ok := w.report(Event{
			Phase: PhasePath,
			Cell:  p,
			Stats: Stats{PathLength: i + 1, Elapsed: w.elapsed()},
		}, 2*w.opts.StepDelay)
		if !ok {
			return
		}
	}
}

package search_test

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// P is shorthand for grid.Pos in expected sequences.
func P(row, col int) grid.Pos { return grid.Pos{Row: row, Col: col} }

// randomMaze builds a rows×cols board with the start in the top-left corner,
// the end in the bottom-right corner and walls at the given density.
// Deterministic per seed.
func randomMaze(rows, cols int, density float64, seed int64) *grid.Grid {
	rng := rand.New(rand.NewSource(seed))
	g, _ := grid.New(rows, cols)
	for c := range g.All() {
		c.IsWall = rng.Float64() < density
	}
	_ = g.SetStart(grid.Pos{})
	_ = g.SetEnd(grid.Pos{Row: rows - 1, Col: cols - 1})
	return g
}

// shortest returns the brute-force edge distance from start to end, or
// grid.Unknown if the end is unreachable.
func shortest(g *grid.Grid) int {
	s, _ := g.Start()
	e, _ := g.End()
	return g.Distances(s)[g.Index(e)]
}

// fakeClock advances by step on every read.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

// sleepRecorder collects requested pauses instead of sleeping.
type sleepRecorder struct {
	calls []time.Duration
}

func (r *sleepRecorder) Sleep(d time.Duration) { r.calls = append(r.calls, d) }

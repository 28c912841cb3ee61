package search

import (
	"iter"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// strategy expands the grid from w.start until the goal is visited or the
// frontier is exhausted. It reports whether the goal was reached.
type strategy func(w *walker) bool

var strategies = map[Algorithm]strategy{
	Dijkstra: dijkstra,
	AStar:    astar,
	BFS:      bfs,
	DFS:      dfs,
}

// walker encapsulates the mutable state of one run. It is the only thing the
// variants share: the grid, the endpoints, and the record/report/pace step.
type walker struct {
	g           *grid.Grid
	start, goal grid.Pos
	opts        Options
	began       time.Time
	order       []grid.Pos

	// emit receives every event; returning false stops the run.
	emit    func(Event) bool
	stopped bool
}

// Run executes algo on g and returns the visited order, the reconstructed
// path and the mutated grid.
//
// The caller must have reset g (grid.Grid.Reset) and applied any wall edits
// beforehand. Run validates the grid pointer, the algorithm, the endpoints and
// the options, in that order, before touching any cell.
//
// Returns ErrNilGrid, ErrUnknownAlgorithm, ErrNoStart, ErrNoEnd or
// ErrOptionViolation; the Result is nil in each case.
func Run(g *grid.Grid, algo Algorithm, opts ...Option) (*Result, error) {
	w, strat, err := prepare(g, algo, opts)
	if err != nil {
		return nil, err
	}
	return w.run(algo, strat), nil
}

// Trace validates like Run and returns a lazy sequence of the run's events.
// Nothing happens until the sequence is ranged over; each range performs a
// fresh run on g, so reset g between ranges. Breaking out of the range stops
// the run at that step.
//
// Options apply as in Run: a progress callback still fires, and the step delay
// still paces the producer.
func Trace(g *grid.Grid, algo Algorithm, opts ...Option) (iter.Seq[Event], error) {
	if _, _, err := prepare(g, algo, opts); err != nil {
		return nil, err
	}
	return func(yield func(Event) bool) {
		w, strat, _ := prepare(g, algo, opts)
		w.emit = yield
		w.run(algo, strat)
	}, nil
}

// Compare runs every algorithm on its own reset clone of g and returns the
// results in Algorithms() order. g itself is not mutated.
func Compare(g *grid.Grid, opts ...Option) ([]*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	out := make([]*Result, 0, len(strategies))
	for _, algo := range Algorithms() {
		snapshot := g.Clone()
		snapshot.Reset()
		res, err := Run(snapshot, algo, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}

	return out, nil
}

// prepare validates input and builds a walker without mutating g.
func prepare(g *grid.Grid, algo Algorithm, opts []Option) (*walker, strategy, error) {
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	strat, ok := strategies[algo]
	if !ok {
		return nil, nil, ErrUnknownAlgorithm
	}
	start, ok := g.Start()
	if !ok {
		return nil, nil, ErrNoStart
	}
	goal, ok := g.End()
	if !ok {
		return nil, nil, ErrNoEnd
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}

	return &walker{
		g:     g,
		start: start,
		goal:  goal,
		opts:  o,
		order: make([]grid.Pos, 0, g.Len()),
		emit:  func(Event) bool { return true },
	}, strat, nil
}

// run performs the search phase, reconstructs the path and replays it.
func (w *walker) run(algo Algorithm, strat strategy) *Result {
	w.began = w.opts.Now()

	found := strat(w)
	var path []grid.Pos
	if found {
		path = Reconstruct(w.g, w.goal)
	}
	if !w.stopped {
		w.replay(path)
	}

	return &Result{
		Algorithm: algo,
		Visited:   w.order,
		Path:      path,
		Found:     found,
		Grid:      w.g,
		Elapsed:   w.elapsed(),
	}
}

// record appends p to the visited order, reports progress and paces.
// It returns false once the consumer has asked to stop.
func (w *walker) record(p grid.Pos) bool {
	w.order = append(w.order, p)
	return w.report(Event{
		Phase: PhaseSearch,
		Cell:  p,
		Stats: Stats{VisitedCount: len(w.order), Elapsed: w.elapsed()},
	}, w.opts.StepDelay)
}

// report delivers ev to the progress callback and the event sink, then
// pauses for delay.
func (w *walker) report(ev Event, delay time.Duration) bool {
	if w.opts.OnProgress != nil {
		w.opts.OnProgress(w.g, ev.Stats)
	}
	if !w.emit(ev) {
		w.stopped = true
		return false
	}
	if delay > 0 {
		w.opts.Sleep(delay)
	}
	return true
}

func (w *walker) elapsed() time.Duration {
	return w.opts.Now().Sub(w.began)
}

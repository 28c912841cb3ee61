package search

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned when a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the supported set.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrMissingEndpoint is the parent of ErrNoStart and ErrNoEnd.
	ErrMissingEndpoint = errors.New("search: grid is missing an endpoint")

	// ErrNoStart is returned when no cell is flagged IsStart.
	ErrNoStart = fmt.Errorf("%w: no start cell", ErrMissingEndpoint)

	// ErrNoEnd is returned when no cell is flagged IsEnd.
	ErrNoEnd = fmt.Errorf("%w: no end cell", ErrMissingEndpoint)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm selects one of the search variants.
type Algorithm int

const (
	// Dijkstra is uniform-cost search.
	Dijkstra Algorithm = iota
	// AStar is heuristic best-first search with a Manhattan heuristic.
	AStar
	// BFS is breadth-first search.
	BFS
	// DFS is depth-first search.
	DFS
)

var algorithmNames = [...]string{
	Dijkstra: "dijkstra",
	AStar:    "astar",
	BFS:      "bfs",
	DFS:      "dfs",
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Dijkstra, AStar, BFS, DFS}
}

// Valid reports whether a is a supported algorithm.
func (a Algorithm) Valid() bool {
	return a >= Dijkstra && int(a) < len(algorithmNames)
}

// String returns the lower-case label ("dijkstra", "astar", "bfs", "dfs").
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm maps a label back to its Algorithm. Matching ignores case
// and surrounding spaces; "a*" is accepted for AStar.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "a*" {
		return AStar, nil
	}
	for i, n := range algorithmNames {
		if n == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Phase tells which half of a run produced an Event.
type Phase int

const (
	// PhaseSearch events follow each cell visitation.
	PhaseSearch Phase = iota
	// PhasePath events follow each path-reveal step.
	PhasePath
)

// String returns "search" or "path".
func (p Phase) String() string {
	if p == PhasePath {
		return "path"
	}
	return "search"
}

// Stats is the progress payload. VisitedCount is non-zero only during the
// search phase, PathLength only during replay. Elapsed is measured from the
// start of the run.
type Stats struct {
	VisitedCount int
	PathLength   int
	Elapsed      time.Duration
}

// ProgressFunc receives the grid and current Stats after every reported step.
// It runs on the search goroutine; the grid must not be mutated from it.
type ProgressFunc func(g *grid.Grid, s Stats)

// Event is one step of a run as produced by Trace.
type Event struct {
	Phase Phase
	Cell  grid.Pos
	Stats Stats
}

// Result holds the outcome of a run:
//   - Visited: cells in the order the algorithm expanded them.
//   - Path: start→goal cells, empty if the goal was not reached.
//   - Found: whether the goal was reached.
//   - Grid: the grid the run mutated.
type Result struct {
	Algorithm Algorithm
	Visited   []grid.Pos
	Path      []grid.Pos
	Found     bool
	Grid      *grid.Grid
	Elapsed   time.Duration
}

// PathEdges returns the path length in edges (cells - 1), or 0 for no path.
func (r *Result) PathEdges() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Option configures a run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds pacing and reporting parameters for a run.
type Options struct {
	// StepDelay pauses after each search step; replay steps pause twice as long.
	StepDelay time.Duration

	// OnProgress, if non-nil, is called after every reported step.
	OnProgress ProgressFunc

	// Sleep performs the pause. Defaults to time.Sleep.
	Sleep func(time.Duration)

	// Now reads the clock for Stats.Elapsed. Defaults to time.Now.
	Now func() time.Time

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no delay, no progress callback,
// time.Sleep and time.Now.
func DefaultOptions() Options {
	return Options{
		StepDelay:  0,
		OnProgress: nil,
		Sleep:      time.Sleep,
		Now:        time.Now,
	}
}

// WithStepDelay sets the per-step pause.
//
//	d > 0:  pause d per search step and 2d per replay step
//	d == 0: no pacing
//	d < 0:  invalid → ErrOptionViolation
func WithStepDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: step delay cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.StepDelay = d
	}
}

// WithOnProgress registers a progress callback.
func WithOnProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		o.OnProgress = fn
	}
}

// WithSleep replaces the pause function. A nil fn is ignored.
func WithSleep(fn func(time.Duration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Sleep = fn
		}
	}
}

// WithClock replaces the clock used for Stats.Elapsed. A nil fn is ignored.
func WithClock(fn func() time.Time) Option {
	return func(o *Options) {
		if fn != nil {
			o.Now = fn
		}
	}
}

// Package search runs one-shot shortest-path searches over a grid.Grid and
// streams every step so a caller can animate the exploration.
//
// Four interchangeable algorithms share one contract (same inputs, same
// Result, same progress stream) and differ only in frontier structure and
// expansion order:
//
//   - Dijkstra: uniform-cost search. Selects the lowest tentative distance,
//     ties going to the cell reached earliest, then scan order (row, then
//     column), as a stable re-sort of the remaining cells would give.
//   - AStar:    best-first search on f = g + Manhattan(cell, goal). The open set
//     is stably re-sorted by f every iteration.
//   - BFS:      FIFO queue. Cells are marked visited and given their predecessor
//     when enqueued.
//   - DFS:      LIFO stack. Duplicates may be pushed and are filtered when popped.
//     The path found is valid but not necessarily shortest.
//
// Dijkstra, AStar and BFS return shortest paths (edge count) on the
// unweighted 4-connected grid.
//
// A run has two phases. The search phase reports after every visitation
// (Stats.VisitedCount > 0). The replay phase walks the reconstructed path from
// start to goal, flags intermediate cells IsPath and reports after every step
// (Stats.PathLength > 0). With a step delay d, search steps pause d and replay
// steps pause 2d. A zero delay never sleeps.
//
// Complexity (n = rows × cols):
//
//   - Dijkstra: O(n log n) with a (distance, round, index) heap.
//   - AStar:    O(n² log n) worst case, from the stable re-sort that keeps
//     tie order reproducible.
//   - BFS, DFS: O(n).
//   - Memory:   O(n).
//
// Options:
//
//   - WithStepDelay(d)    pacing between reported steps (d ≥ 0).
//   - WithOnProgress(fn)  callback after every reported step.
//   - WithSleep(fn)       replaces time.Sleep (tests, custom schedulers).
//   - WithClock(fn)       replaces time.Now for Stats.Elapsed.
//
// Errors:
//
//   - ErrNilGrid           grid pointer is nil.
//   - ErrUnknownAlgorithm  the Algorithm value is not one of the four.
//   - ErrNoStart, ErrNoEnd the grid lacks a start or end marker (both wrap
//     ErrMissingEndpoint).
//   - ErrOptionViolation   invalid option, e.g. a negative delay.
//
// None of these mutate the grid. An unreachable goal is not an error: the
// Result has Found == false and an empty Path.
//
// A run takes exclusive ownership of the grid until it returns. It has no
// cancellation. A consumer of Trace may stop ranging early, and cell flags
// already written stay written.
package search

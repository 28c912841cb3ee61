// Package gridpath runs step-by-step pathfinding on 4-connected grids, built
// so a front end can watch every expansion as it happens.
//
// 🚀 What is gridpath?
//
//	A small, dependency-light engine with:
//		• Grid model: walls, start/end markers, per-cell search state
//		• Uniform-cost search: Dijkstra over unit edges
//		• Heuristic search: A* with the Manhattan distance
//		• Traversals: BFS (fewest edges), DFS (any path)
//		• Progress reporting: a callback or a lazy iter.Seq of events,
//		  paced by a configurable step delay
//		• Path replay: the found path revealed cell by cell
//
// ✨ Why gridpath?
//
//   - Observable - every visitation and every path step is reported
//   - Deterministic - fixed neighbour order (up, down, left, right) and
//     documented tie-breaks, so runs can be replayed and tested exactly
//   - Pure Go library core - grid/ and search/ import nothing outside
//     the standard library
//
// Layout:
//
//	grid/     - cells, walls, markers, editing, text layouts, flood fill
//	search/   - Run, Trace, Compare and the four algorithms
//	cmd/      - the gridpath binary: solve a scenario, compare, or -serve HTTP
//	internal/ - config, logging, HCL scenarios, CLI and the gin API
//
// Quick ASCII example:
//
//	S..#....
//	.#.#.##.
//	.#...#.E
//
// is a board; '#' are walls, 'S' and 'E' the endpoints.
//
//	go get github.com/katalvlaran/gridpath/search
package gridpath

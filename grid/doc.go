// Package grid models the 2D obstacle board that the search engine explores.
//
// What:
//
//   - Grid is a fixed-size, row-major rectangle of Cells addressed by Pos{Row, Col}.
//   - Each Cell carries static flags (IsWall, IsStart, IsEnd) owned by the caller
//     and search-state fields (IsVisited, IsPath, Distance, GCost/HCost/FCost,
//     Previous) that a search mutates in place.
//   - Neighbors returns orthogonal, non-wall neighbours in the fixed order
//     up, down, left, right. Every traversal built on it inherits that order.
//   - Reachable and Distances flood-fill the board. They give brute-force answers
//     to check search results against.
//
// Why:
//
//   - Predecessors are stored as Pos, never as pointers, so a Grid can be cloned,
//     reset and rendered without any ownership questions.
//   - Static structure and search state share a Cell so a progress callback can
//     render the whole board from a single value.
//
// Complexity:
//
//   - New, Parse, Reset, Clone, String: O(R×C) time and memory.
//   - Neighbors, At, Cell: O(1).
//   - Reachable, Distances: O(R×C) time, O(R×C) memory.
//
// Errors:
//
//   - ErrEmptyGrid: a dimension is not positive, or no rows were given.
//   - ErrNonRectangular: text rows have differing lengths.
//   - ErrUnknownSymbol: a text row holds a character outside ".#SE".
//   - ErrOutOfBounds: an edit targets a position outside the board.
package grid

package grid

import "iter"

// neighborOffsets lists orthogonal moves in the order up, down, left, right.
// Search tie-breaking depends on this order.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// New constructs an empty rows×cols grid with every cell reset.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	for i := range g.cells {
		c := &g.cells[i]
		c.Row, c.Col = i/cols, i%cols
		c.reset()
	}

	return g, nil
}

// Default returns the stock 25×50 board with the start at (12,10) and the end at (12,40).
func Default() *Grid {
	g, _ := New(DefaultRows, DefaultCols)
	_ = g.SetStart(Pos{Row: 12, Col: 10})
	_ = g.SetEnd(Pos{Row: 12, Col: 40})

	return g
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Index maps p to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(p Pos) int {
	return p.Row*g.Cols + p.Col
}

// Coordinate converts a row-major index back to a Pos.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Pos {
	return Pos{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Cell returns the cell at p, or nil if p is out of bounds.
func (g *Grid) Cell(p Pos) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	return &g.cells[g.Index(p)]
}

// At is Cell(Pos{row, col}).
func (g *Grid) At(row, col int) *Cell {
	return g.Cell(Pos{Row: row, Col: col})
}

// All yields every cell in scan order: row by row, column by column.
func (g *Grid) All() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range g.cells {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// Neighbors returns the orthogonal neighbours of p that are inside the grid
// and not walls, in the order up, down, left, right.
// Complexity: O(1).
func (g *Grid) Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Pos{Row: p.Row + d[0], Col: p.Col + d[1]}
		if !g.InBounds(n) || g.cells[g.Index(n)].IsWall {
			continue
		}
		out = append(out, n)
	}

	return out
}

// Start returns the first cell in scan order flagged IsStart.
func (g *Grid) Start() (Pos, bool) {
	return g.find(func(c *Cell) bool { return c.IsStart })
}

// End returns the first cell in scan order flagged IsEnd.
func (g *Grid) End() (Pos, bool) {
	return g.find(func(c *Cell) bool { return c.IsEnd })
}

func (g *Grid) find(match func(*Cell) bool) (Pos, bool) {
	for i := range g.cells {
		if match(&g.cells[i]) {
			return g.cells[i].Pos(), true
		}
	}
	return NoPos, false
}

// Reset clears the search state of every cell. Walls and the start/end
// markers are kept.
// Complexity: O(R×C).
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].reset()
	}
}

// Clone returns a deep copy of g.
// Complexity: O(R×C) time and memory.
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		Rows:  g.Rows,
		Cols:  g.Cols,
		cells: make([]Cell, len(g.cells)),
	}
	copy(cp.cells, g.cells)

	return cp
}

package grid

import (
	"fmt"
	"math"
)

// Unknown is the Distance of a cell no search has reached yet.
const Unknown = math.MaxInt

// Board defaults used by Default.
const (
	DefaultRows = 25
	DefaultCols = 50
)

// Pos identifies a cell by row and column.
type Pos struct {
	Row, Col int
}

// NoPos marks the absence of a predecessor.
var NoPos = Pos{Row: -1, Col: -1}

// String formats p as "(row,col)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns |Δrow| + |Δcol| between a and b.
func Manhattan(a, b Pos) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Cell is a single board square.
//
// IsWall, IsStart and IsEnd are static: the editing side of the application
// owns them and Reset leaves them alone. The remaining fields are search state.
type Cell struct {
	Row, Col int

	IsWall  bool
	IsStart bool
	IsEnd   bool

	IsVisited bool // set when a search commits to the cell
	IsPath    bool // set during path replay, never on start or end

	Distance int // uniform-cost tentative distance; Unknown until reached
	GCost    int // heuristic search: confirmed cost from start
	HCost    int // heuristic search: Manhattan estimate to goal
	FCost    int // GCost + HCost

	Previous Pos // predecessor on the best-known path, NoPos if none
}

// Pos returns the coordinates of c.
func (c *Cell) Pos() Pos {
	return Pos{Row: c.Row, Col: c.Col}
}

// HasPrevious reports whether c has a predecessor.
func (c *Cell) HasPrevious() bool {
	return c.Previous != NoPos
}

// reset clears search state and keeps the static flags.
func (c *Cell) reset() {
	c.IsVisited = false
	c.IsPath = false
	c.Distance = Unknown
	c.GCost, c.HCost, c.FCost = 0, 0, 0
	c.Previous = NoPos
}

// Grid is a rectangular board of Rows×Cols cells stored row-major.
// Dimensions never change after construction.
type Grid struct {
	Rows, Cols int
	cells      []Cell
}

package grid

import "fmt"

// SetWall sets or clears the wall flag at p. Start and end cells cannot
// become walls; the call is ignored for them.
func (g *Grid) SetWall(p Pos, wall bool) error {
	c := g.Cell(p)
	if c == nil {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if c.IsStart || c.IsEnd {
		return nil
	}
	c.IsWall = wall

	return nil
}

// Erase removes a wall at p.
func (g *Grid) Erase(p Pos) error {
	return g.SetWall(p, false)
}

// SetStart moves the start marker to p. Any previous start is cleared and
// a wall at p is removed. If p holds the end marker the move is refused
// with ErrOccupied and the grid is unchanged.
func (g *Grid) SetStart(p Pos) error {
	return g.moveMarker(p, func(c *Cell) *bool { return &c.IsStart }, func(c *Cell) bool { return c.IsEnd })
}

// SetEnd moves the end marker to p, with the same rules as SetStart.
func (g *Grid) SetEnd(p Pos) error {
	return g.moveMarker(p, func(c *Cell) *bool { return &c.IsEnd }, func(c *Cell) bool { return c.IsStart })
}

func (g *Grid) moveMarker(p Pos, flag func(*Cell) *bool, taken func(*Cell) bool) error {
	target := g.Cell(p)
	if target == nil {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if taken(target) {
		return fmt.Errorf("%w: %v", ErrOccupied, p)
	}
	for i := range g.cells {
		*flag(&g.cells[i]) = false
	}
	*flag(target) = true
	target.IsWall = false

	return nil
}

// ClearWalls removes every wall and resets search state.
func (g *Grid) ClearWalls() {
	for i := range g.cells {
		g.cells[i].IsWall = false
		g.cells[i].reset()
	}
}

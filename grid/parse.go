package grid

import (
	"fmt"
	"strings"
)

// Layout symbols understood by Parse and produced by String.
const (
	SymbolOpen    = '.'
	SymbolWall    = '#'
	SymbolStart   = 'S'
	SymbolEnd     = 'E'
	SymbolVisited = 'o'
	SymbolPath    = '*'
)

// Parse builds a grid from text rows, one string per row:
//
//	S..#.
//	.#.#.
//	...#E
//
// '.' is open, '#' a wall, 'S' the start and 'E' the end. Only these four
// symbols are accepted. Missing or repeated start/end markers are not
// rejected here; the search engine reports them.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(lines[0])
	for _, line := range lines {
		if len(line) != cols {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for r, line := range lines {
		for c := 0; c < cols; c++ {
			cell := g.At(r, c)
			switch line[c] {
			case SymbolOpen:
			case SymbolWall:
				cell.IsWall = true
			case SymbolStart:
				cell.IsStart = true
			case SymbolEnd:
				cell.IsEnd = true
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, line[c], r, c)
			}
		}
	}

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for tests and examples.
func MustParse(lines ...string) *Grid {
	g, err := Parse(lines)
	if err != nil {
		panic(err)
	}
	return g
}

// Lines renders the grid one string per row. Static markers win over
// search state: start and end keep their letter, path cells show '*',
// other visited cells 'o'.
func (g *Grid) Lines() []string {
	out := make([]string, g.Rows)
	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		b.Reset()
		for c := 0; c < g.Cols; c++ {
			b.WriteByte(g.At(r, c).symbol())
		}
		out[r] = b.String()
	}

	return out
}

// String joins Lines with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

func (c *Cell) symbol() byte {
	switch {
	case c.IsStart:
		return SymbolStart
	case c.IsEnd:
		return SymbolEnd
	case c.IsWall:
		return SymbolWall
	case c.IsPath:
		return SymbolPath
	case c.IsVisited:
		return SymbolVisited
	default:
		return SymbolOpen
	}
}

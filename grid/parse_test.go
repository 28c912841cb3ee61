package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
)

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"NoRows", nil, grid.ErrEmptyGrid},
		{"EmptyRow", []string{""}, grid.ErrEmptyGrid},
		{"Ragged", []string{"S..", "E."}, grid.ErrNonRectangular},
		{"BadSymbol", []string{"S.x", "..E"}, grid.ErrUnknownSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.lines)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParse_Symbols(t *testing.T) {
	g, err := grid.Parse([]string{
		"S.#",
		"#.E",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 3, g.Cols)
	assert.True(t, g.At(0, 0).IsStart)
	assert.True(t, g.At(0, 2).IsWall)
	assert.True(t, g.At(1, 0).IsWall)
	assert.True(t, g.At(1, 2).IsEnd)
	assert.False(t, g.At(1, 1).IsWall)
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { grid.MustParse("S?E") })
}

// TestLines_RendersSearchState checks the precedence of render symbols.
func TestLines_RendersSearchState(t *testing.T) {
	g := grid.MustParse(
		"S..",
		".#E",
	)
	g.At(0, 0).IsVisited = true
	g.At(0, 1).IsVisited = true
	g.At(0, 1).IsPath = true
	g.At(1, 0).IsVisited = true

	assert.Equal(t, []string{"S*.", "o#E"}, g.Lines())
	assert.Equal(t, "S*.\no#E", g.String())
}

// TestLines_RoundTrip ensures a fresh grid renders back to its layout.
func TestLines_RoundTrip(t *testing.T) {
	layout := []string{"S.#.", "..#E"}
	g, err := grid.Parse(layout)
	require.NoError(t, err)
	assert.Equal(t, layout, g.Lines())
}

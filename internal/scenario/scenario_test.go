package scenario_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/scenario"
	"github.com/katalvlaran/gridpath/search"
)

func TestLoad_HCLLayout(t *testing.T) {
	sc, err := scenario.Load(context.Background(), filepath.Join("testdata", "corridor.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "corridor", sc.Name)
	assert.Equal(t, "astar", sc.Algorithm)
	require.NotNil(t, sc.StepDelay)
	assert.Equal(t, 10*time.Millisecond, *sc.StepDelay)

	want := []string{
		"S...#.#..",
		"....#.#..",
		"........E",
	}
	if diff := cmp.Diff(want, sc.Grid.Lines()); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_HCLBlocks(t *testing.T) {
	sc, err := scenario.Load(context.Background(), filepath.Join("testdata", "blocks.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "blocks", sc.Name, "name falls back to the file name")
	assert.Empty(t, sc.Algorithm)
	assert.Nil(t, sc.StepDelay)

	want := []string{
		"S.....",
		".####.",
		"......",
		".....E",
	}
	if diff := cmp.Diff(want, sc.Grid.Lines()); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Text(t *testing.T) {
	sc, err := scenario.Load(context.Background(), filepath.Join("testdata", "pocket.txt"))
	require.NoError(t, err)

	assert.Equal(t, "pocket", sc.Name)
	assert.Equal(t, []string{"S#...", "##..E"}, sc.Grid.Lines())

	res, err := search.Run(sc.Grid, search.BFS)
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := scenario.Load(context.Background(), filepath.Join("testdata", "absent.hcl"))
	assert.Error(t, err)
}

func TestParseHCL_DefaultBoardSize(t *testing.T) {
	sc, err := scenario.ParseHCL([]byte(`name = "empty"`), "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, grid.DefaultRows, sc.Grid.Rows)
	assert.Equal(t, grid.DefaultCols, sc.Grid.Cols)
}

func TestParseHCL_Functions(t *testing.T) {
	src := `
name   = format("%s-%d", "wide", max(1, 2))
layout = concat(["S.."], ["..E"])
`
	sc, err := scenario.ParseHCL([]byte(src), "fn.hcl")
	require.NoError(t, err)
	assert.Equal(t, "wide-2", sc.Name)
	assert.Equal(t, []string{"S..", "..E"}, sc.Grid.Lines())
}

func TestParseHCL_Errors(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		target error
	}{
		{"UnknownAlgorithm", `algorithm = "greedy"`, search.ErrUnknownAlgorithm},
		{"NegativeDelay", `step_delay_ms = -5`, scenario.ErrInvalid},
		{"RowsMismatch", "rows = 3\nlayout = [\"S.E\"]", scenario.ErrInvalid},
		{"ColsMismatch", "cols = 4\nlayout = [\"S.E\"]", scenario.ErrInvalid},
		{"BadSymbol", `layout = ["S?E"]`, grid.ErrUnknownSymbol},
		{"Ragged", `layout = ["S.E", ".."]`, grid.ErrNonRectangular},
		{"EmptyBoard", `rows = 0`, grid.ErrEmptyGrid},
		{"WallOutside", "rows = 2\ncols = 2\nwall {\n  row = 0\n  col = 0\n  to_col = 5\n}", grid.ErrOutOfBounds},
		{"StartOutside", "rows = 2\ncols = 2\nstart {\n  row = 2\n  col = 0\n}", grid.ErrOutOfBounds},
		{"StartOnEnd", "layout = [\"S.E\"]\nstart {\n  row = 0\n  col = 2\n}", grid.ErrOccupied},
		{"EndOnStart", "layout = [\"S.E\"]\nend {\n  row = 0\n  col = 0\n}", grid.ErrOccupied},
		{"TooManyCells", "rows = 100000\ncols = 100000", scenario.ErrInvalid},
		{"TooManyRows", "rows = 2000000\ncols = 1", scenario.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.ParseHCL([]byte(tc.src), tc.name+".hcl")
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func TestParseHCL_DecodeFailures(t *testing.T) {
	cases := map[string]string{
		"Syntax":           `rows = `,
		"UnknownAttribute": `colour = "red"`,
		"MissingCol":       "start {\n  row = 1\n}",
		"UnknownVariable":  `algorithm = algorithms.greedy`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := scenario.ParseHCL([]byte(src), name+".hcl")
			assert.Error(t, err)
		})
	}
}

func TestParseText_Empty(t *testing.T) {
	_, err := scenario.ParseText([]byte("// nothing here\n\n"), "blank.txt")
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

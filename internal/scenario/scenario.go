package scenario

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/search"
)

// ErrInvalid reports a scenario that decodes but does not describe a usable board.
var ErrInvalid = errors.New("scenario: invalid scenario")

// MaxCells bounds rows × cols for boards sized by rows/cols.
const MaxCells = 1_000_000

// Scenario is a board plus the run settings stored alongside it.
type Scenario struct {
	Name string
	// Algorithm is the canonical label, or "" when the file does not pin one.
	Algorithm string
	// StepDelay is nil when the file does not set step_delay_ms.
	StepDelay *time.Duration
	Grid      *grid.Grid
}

// hclScenario is the decode target for .hcl files.
type hclScenario struct {
	Name        string     `hcl:"name,optional"`
	Algorithm   *string    `hcl:"algorithm,optional"`
	StepDelayMs *int       `hcl:"step_delay_ms,optional"`
	Rows        *int       `hcl:"rows,optional"`
	Cols        *int       `hcl:"cols,optional"`
	Layout      []string   `hcl:"layout,optional"`
	Start       *hclPoint  `hcl:"start,block"`
	End         *hclPoint  `hcl:"end,block"`
	Walls       []hclPoint `hcl:"wall,block"`
}

type hclPoint struct {
	Row   int  `hcl:"row"`
	Col   int  `hcl:"col"`
	ToRow *int `hcl:"to_row,optional"`
	ToCol *int `hcl:"to_col,optional"`
}

// Load reads the scenario at path, choosing the format by extension.
func Load(ctx context.Context, path string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scenario.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: reading %s: %w", path, err)
	}

	var sc *Scenario
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		sc, err = ParseHCL(src, path)
	} else {
		sc, err = ParseText(src, path)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded scenario.", "name", sc.Name, "rows", sc.Grid.Rows, "cols", sc.Grid.Cols)
	return sc, nil
}

// ParseText reads a plain text layout. filename only names the scenario.
func ParseText(src []byte, filename string) (*Scenario, error) {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(src))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scenario: reading %s: %w", filename, err)
	}

	g, err := grid.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", filename, err)
	}

	return &Scenario{Name: baseName(filename), Grid: g}, nil
}

// ParseHCL decodes an HCL scenario. filename is used in diagnostics and
// as the fallback name.
func ParseHCL(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var raw hclScenario
	diags = gohcl.DecodeBody(file.Body, evalContext(), &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	sc, err := raw.build()
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", filename, err)
	}
	if sc.Name == "" {
		sc.Name = baseName(filename)
	}

	return sc, nil
}

// evalContext exposes the board defaults, the algorithm labels and a few
// helper functions to scenario expressions.
func evalContext() *hcl.EvalContext {
	algos := make(map[string]cty.Value, len(search.Algorithms()))
	for _, a := range search.Algorithms() {
		algos[a.String()] = cty.StringVal(a.String())
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"rows": cty.NumberIntVal(grid.DefaultRows),
				"cols": cty.NumberIntVal(grid.DefaultCols),
			}),
			"algorithms": cty.ObjectVal(algos),
		},
		Functions: map[string]function.Function{
			"concat": stdlib.ConcatFunc,
			"format": stdlib.FormatFunc,
			"min":    stdlib.MinFunc,
			"max":    stdlib.MaxFunc,
		},
	}
}

func (raw *hclScenario) build() (*Scenario, error) {
	sc := &Scenario{Name: raw.Name}

	if raw.Algorithm != nil {
		algo, err := search.ParseAlgorithm(*raw.Algorithm)
		if err != nil {
			return nil, err
		}
		sc.Algorithm = algo.String()
	}
	if raw.StepDelayMs != nil {
		if *raw.StepDelayMs < 0 {
			return nil, fmt.Errorf("%w: step_delay_ms must be non-negative, got %d", ErrInvalid, *raw.StepDelayMs)
		}
		d := time.Duration(*raw.StepDelayMs) * time.Millisecond
		sc.StepDelay = &d
	}

	g, err := raw.board()
	if err != nil {
		return nil, err
	}
	if raw.Start != nil {
		if err := g.SetStart(raw.Start.pos()); err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
	}
	if raw.End != nil {
		if err := g.SetEnd(raw.End.pos()); err != nil {
			return nil, fmt.Errorf("end: %w", err)
		}
	}
	for i, w := range raw.Walls {
		if err := w.paint(g); err != nil {
			return nil, fmt.Errorf("wall %d: %w", i, err)
		}
	}
	sc.Grid = g

	return sc, nil
}

// board sizes the grid from the layout, or from rows/cols when there is none.
func (raw *hclScenario) board() (*grid.Grid, error) {
	if len(raw.Layout) == 0 {
		rows, cols := grid.DefaultRows, grid.DefaultCols
		if raw.Rows != nil {
			rows = *raw.Rows
		}
		if raw.Cols != nil {
			cols = *raw.Cols
		}
		if rows > MaxCells || cols > MaxCells || rows*cols > MaxCells {
			return nil, fmt.Errorf("%w: %d x %d board exceeds %d cells", ErrInvalid, rows, cols, MaxCells)
		}
		return grid.New(rows, cols)
	}

	g, err := grid.Parse(raw.Layout)
	if err != nil {
		return nil, err
	}
	if raw.Rows != nil && *raw.Rows != g.Rows {
		return nil, fmt.Errorf("%w: rows = %d but layout has %d", ErrInvalid, *raw.Rows, g.Rows)
	}
	if raw.Cols != nil && *raw.Cols != g.Cols {
		return nil, fmt.Errorf("%w: cols = %d but layout has %d", ErrInvalid, *raw.Cols, g.Cols)
	}

	return g, nil
}

func (p hclPoint) pos() grid.Pos { return grid.Pos{Row: p.Row, Col: p.Col} }

// paint walls every cell in the rectangle spanned by (row, col) and
// (to_row, to_col). Start and end cells are skipped by SetWall.
func (p hclPoint) paint(g *grid.Grid) error {
	r1, c1 := p.Row, p.Col
	if p.ToRow != nil {
		r1 = *p.ToRow
	}
	if p.ToCol != nil {
		c1 = *p.ToCol
	}
	r0, c0 := min(p.Row, r1), min(p.Col, c1)
	r1, c1 = max(p.Row, r1), max(p.Col, c1)

	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if err := g.SetWall(grid.Pos{Row: r, Col: c}, true); err != nil {
				return err
			}
		}
	}

	return nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

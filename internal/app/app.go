package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
	"github.com/katalvlaran/gridpath/internal/httpapi"
	"github.com/katalvlaran/gridpath/internal/scenario"
	"github.com/katalvlaran/gridpath/search"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
	sleep  func(time.Duration)
}

// New returns an App writing results to outW and logs to logger.
func New(outW io.Writer, logger *slog.Logger, cfg *Config) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{outW: outW, logger: logger, cfg: cfg, sleep: time.Sleep}
}

// Run executes the mode selected by the configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "serve", a.cfg.Serve, "compare", a.cfg.Compare)

	if a.cfg.Serve {
		return a.serve(ctx)
	}

	sc, err := a.load(ctx)
	if err != nil {
		return err
	}
	if a.cfg.Compare {
		return a.compare(sc)
	}
	return a.solve(sc)
}

// load reads the configured scenario, or builds the default board.
func (a *App) load(ctx context.Context) (*scenario.Scenario, error) {
	if a.cfg.ScenarioPath == "" {
		a.logger.Debug("No scenario given, using the default board.")
		return &scenario.Scenario{Name: "default", Grid: grid.Default()}, nil
	}
	sc, err := scenario.Load(ctx, a.cfg.ScenarioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario: %w", err)
	}
	return sc, nil
}

// algorithm resolves the label: flag, then scenario, then environment.
func (a *App) algorithm(sc *scenario.Scenario) (search.Algorithm, error) {
	label := a.cfg.Env.Algorithm
	if sc != nil && sc.Algorithm != "" {
		label = sc.Algorithm
	}
	if a.cfg.Algorithm != "" {
		label = a.cfg.Algorithm
	}
	return search.ParseAlgorithm(label)
}

// stepDelay resolves pacing with the same precedence as algorithm.
func (a *App) stepDelay(sc *scenario.Scenario) time.Duration {
	switch {
	case a.cfg.StepDelay != nil:
		return *a.cfg.StepDelay
	case sc.StepDelay != nil:
		return *sc.StepDelay
	default:
		return a.cfg.Env.StepDelay
	}
}

// solve runs one algorithm and prints the final board and stats. With a
// step delay the board is redrawn after every step.
func (a *App) solve(sc *scenario.Scenario) error {
	algo, err := a.algorithm(sc)
	if err != nil {
		return err
	}
	delay := a.stepDelay(sc)

	opts := []search.Option{search.WithStepDelay(delay), search.WithSleep(a.sleep)}
	if delay > 0 {
		opts = append(opts, search.WithOnProgress(func(g *grid.Grid, s search.Stats) {
			fmt.Fprint(a.outW, clearScreen)
			fmt.Fprintln(a.outW, g.String())
			fmt.Fprintf(a.outW, "visited=%d path=%d elapsed=%v\n", s.VisitedCount, s.PathLength, s.Elapsed.Round(time.Millisecond))
		}))
	}

	a.logger.Info("Search starting.", "scenario", sc.Name, "algorithm", algo, "rows", sc.Grid.Rows, "cols", sc.Grid.Cols, "step_delay", delay)
	res, err := search.Run(sc.Grid, algo, opts...)
	if err != nil {
		return fmt.Errorf("search %s on %s: %w", algo, sc.Name, err)
	}
	a.logger.Info("Search finished.", "found", res.Found, "visited", len(res.Visited), "path", len(res.Path), "elapsed", res.Elapsed)

	fmt.Fprintf(a.outW, "scenario: %s (%dx%d)\n", sc.Name, sc.Grid.Rows, sc.Grid.Cols)
	fmt.Fprintln(a.outW, res.Grid.String())
	fmt.Fprintf(a.outW, "algorithm=%s found=%t visited=%d path=%d elapsed=%v\n",
		algo, res.Found, len(res.Visited), len(res.Path), res.Elapsed)

	return nil
}

// compare runs every algorithm without pacing and prints one row each.
func (a *App) compare(sc *scenario.Scenario) error {
	results, err := search.Compare(sc.Grid)
	if err != nil {
		return fmt.Errorf("compare on %s: %w", sc.Name, err)
	}

	fmt.Fprintf(a.outW, "scenario: %s (%dx%d)\n", sc.Name, sc.Grid.Rows, sc.Grid.Cols)
	tw := tabwriter.NewWriter(a.outW, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tFOUND\tVISITED\tPATH\tELAPSED")
	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%t\t%d\t%d\t%v\n", res.Algorithm, res.Found, len(res.Visited), len(res.Path), res.Elapsed)
		a.logger.Debug("Compare row.", "algorithm", res.Algorithm, "found", res.Found, "visited", len(res.Visited))
	}

	return tw.Flush()
}

// serve starts the HTTP API and blocks until ctx is cancelled.
func (a *App) serve(ctx context.Context) error {
	algo, err := a.algorithm(nil)
	if err != nil {
		return err
	}
	gin.SetMode(a.cfg.Env.GinMode)

	router := httpapi.NewRouter(httpapi.Config{
		Addr: a.cfg.Env.Addr,
		Controllers: []httpapi.Controller{
			httpapi.NewSearchController(httpapi.SearchConfig{
				MaxCells:         a.cfg.Env.MaxCells,
				DefaultAlgorithm: algo,
				Logger:           a.logger,
			}),
		},
		Logger: a.logger,
	})

	return router.Run(ctx)
}

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/internal/app"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/search"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments on top of env. It returns a
// populated app.Config, a boolean indicating if the program should exit
// cleanly, or an ExitError.
func Parse(args []string, output io.Writer, env config.Config) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridpath - step-by-step pathfinding on a 4-connected grid.

Usage:
  gridpath [options] [SCENARIO]
  gridpath -serve [options]

Arguments:
  SCENARIO
    Path to a .hcl scenario or a plain text layout. Without one the
    default 25x50 board is used.

Options:
`)
		flagSet.PrintDefaults()
	}

	algorithmFlag := flagSet.String("algorithm", env.Algorithm, "Search algorithm: "+algorithmList()+".")
	delayFlag := flagSet.Duration("delay", env.StepDelay, "Pause after each search step; path steps pause twice as long.")
	compareFlag := flagSet.Bool("compare", false, "Run every algorithm on the board and print a comparison.")
	serveFlag := flagSet.Bool("serve", false, "Serve the HTTP API instead of solving a board.")
	addrFlag := flagSet.String("addr", env.Addr, "Listen address for -serve.")
	logLevelFlag := flagSet.String("log-level", env.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", env.LogFormat, "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if flagSet.NArg() > 1 {
		return nil, false, usageError("expected at most one SCENARIO, got %d", flagSet.NArg())
	}
	if *serveFlag && *compareFlag {
		return nil, false, usageError("-serve and -compare cannot be combined")
	}
	if *serveFlag && flagSet.NArg() > 0 {
		return nil, false, usageError("-serve does not take a SCENARIO")
	}
	if *delayFlag < 0 {
		return nil, false, usageError("invalid delay: must be non-negative, got %v", *delayFlag)
	}

	cfg := &app.Config{
		ScenarioPath: flagSet.Arg(0),
		Compare:      *compareFlag,
		Serve:        *serveFlag,
		Env:          env,
	}

	if set["algorithm"] {
		algo, err := search.ParseAlgorithm(*algorithmFlag)
		if err != nil {
			return nil, false, usageError("invalid algorithm %q: must be one of %s", *algorithmFlag, algorithmList())
		}
		cfg.Algorithm = algo.String()
	}
	if set["delay"] {
		d := *delayFlag
		cfg.StepDelay = &d
	}

	cfg.Env.Addr = *addrFlag
	cfg.Env.LogLevel = strings.ToLower(*logLevelFlag)
	if err := config.ValidateLogLevel(cfg.Env.LogLevel); err != nil {
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	cfg.Env.LogFormat = strings.ToLower(*logFormatFlag)
	if err := config.ValidateLogFormat(cfg.Env.LogFormat); err != nil {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	return cfg, false, nil
}

func algorithmList() string {
	names := make([]string, 0, len(search.Algorithms()))
	for _, a := range search.Algorithms() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}

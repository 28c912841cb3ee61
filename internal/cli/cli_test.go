package cli_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/cli"
	"github.com/katalvlaran/gridpath/internal/config"
)

func TestParse_Defaults(t *testing.T) {
	// --- Arrange ---
	env := config.Default()
	out := &bytes.Buffer{}

	// --- Act ---
	cfg, shouldExit, err := cli.Parse(nil, out, env)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Empty(t, cfg.ScenarioPath)
	assert.Empty(t, cfg.Algorithm, "unset flag defers to scenario and environment")
	assert.Nil(t, cfg.StepDelay)
	assert.False(t, cfg.Compare)
	assert.False(t, cfg.Serve)
	assert.Equal(t, env, cfg.Env)
}

func TestParse_Flags(t *testing.T) {
	args := []string{
		"-algorithm", "A*",
		"-delay", "15ms",
		"-compare",
		"-log-level", "DEBUG",
		"-log-format", "json",
		"maze.hcl",
	}
	cfg, shouldExit, err := cli.Parse(args, &bytes.Buffer{}, config.Default())
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, "maze.hcl", cfg.ScenarioPath)
	assert.Equal(t, "astar", cfg.Algorithm)
	require.NotNil(t, cfg.StepDelay)
	assert.Equal(t, 15*time.Millisecond, *cfg.StepDelay)
	assert.True(t, cfg.Compare)
	assert.Equal(t, "debug", cfg.Env.LogLevel)
	assert.Equal(t, "json", cfg.Env.LogFormat)
}

func TestParse_Serve(t *testing.T) {
	cfg, _, err := cli.Parse([]string{"-serve", "-addr", ":9090"}, &bytes.Buffer{}, config.Default())
	require.NoError(t, err)
	assert.True(t, cfg.Serve)
	assert.Equal(t, ":9090", cfg.Env.Addr)
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, shouldExit, err := cli.Parse([]string{"-h"}, out, config.Default())
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "dijkstra, astar, bfs, dfs")
}

func TestParse_Errors(t *testing.T) {
	cases := map[string][]string{
		"UnknownFlag":      {"--no-such-flag"},
		"UnknownAlgorithm": {"-algorithm", "greedy"},
		"NegativeDelay":    {"-delay", "-1ms"},
		"BadLogLevel":      {"-log-level", "loud"},
		"BadLogFormat":     {"-log-format", "xml"},
		"TwoScenarios":     {"a.hcl", "b.hcl"},
		"ServeAndCompare":  {"-serve", "-compare"},
		"ServeScenario":    {"-serve", "a.hcl"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, shouldExit, err := cli.Parse(args, &bytes.Buffer{}, config.Default())
			require.Error(t, err)
			assert.False(t, shouldExit)

			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

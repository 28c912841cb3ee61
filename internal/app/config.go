package app

import (
	"time"

	"github.com/katalvlaran/gridpath/internal/config"
)

// Config holds everything an App needs for one invocation. Zero values in
// Algorithm and StepDelay defer to the scenario file, then to Env.
type Config struct {
	ScenarioPath string         // "" runs the default board
	Algorithm    string         // explicit algorithm label
	StepDelay    *time.Duration // explicit pacing
	Compare      bool           // run every algorithm
	Serve        bool           // start the HTTP API instead
	Env          config.Config  // environment-derived settings
}

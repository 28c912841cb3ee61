package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAddr        = "GRIDPATH_ADDR"
	EnvAlgorithm   = "GRIDPATH_ALGORITHM"
	EnvStepDelayMs = "GRIDPATH_STEP_DELAY_MS"
	EnvLogLevel    = "GRIDPATH_LOG_LEVEL"
	EnvLogFormat   = "GRIDPATH_LOG_FORMAT"
	EnvGinMode     = "GIN_MODE"
	EnvMaxCells    = "GRIDPATH_MAX_CELLS"
)

// ErrInvalid reports an environment value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	Addr      string        // HTTP listen address
	Algorithm string        // default algorithm label
	StepDelay time.Duration // default pacing between steps
	LogLevel  string        // debug, info, warn, error
	LogFormat string        // text or json
	GinMode   string        // gin mode: release, debug, test
	MaxCells  int           // largest grid accepted over HTTP
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:      ":8080",
		Algorithm: "dijkstra",
		StepDelay: 0,
		LogLevel:  "info",
		LogFormat: "text",
		GinMode:   "release",
		MaxCells:  10000,
	}
}

// Load reads the given .env files (".env" if none are named) into the
// process environment, then builds a Config from it. Missing files are
// not an error; variables already set in the environment win over file
// values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var err error

	cfg.Addr = getWithDefault(lookup, EnvAddr, cfg.Addr)
	cfg.Algorithm = strings.ToLower(getWithDefault(lookup, EnvAlgorithm, cfg.Algorithm))
	cfg.GinMode = strings.ToLower(getWithDefault(lookup, EnvGinMode, cfg.GinMode))
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("%w: %s must be 'debug', 'release', or 'test', got %q", ErrInvalid, EnvGinMode, cfg.GinMode)
	}

	delayMs, err := getIntWithDefault(lookup, EnvStepDelayMs, 0)
	if err != nil {
		return Config{}, err
	}
	if delayMs < 0 {
		return Config{}, fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalid, EnvStepDelayMs, delayMs)
	}
	cfg.StepDelay = time.Duration(delayMs) * time.Millisecond

	if cfg.MaxCells, err = getIntWithDefault(lookup, EnvMaxCells, cfg.MaxCells); err != nil {
		return Config{}, err
	}
	if cfg.MaxCells <= 0 {
		return Config{}, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, EnvMaxCells, cfg.MaxCells)
	}

	cfg.LogLevel = strings.ToLower(getWithDefault(lookup, EnvLogLevel, cfg.LogLevel))
	if err := ValidateLogLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	cfg.LogFormat = strings.ToLower(getWithDefault(lookup, EnvLogFormat, cfg.LogFormat))
	if err := ValidateLogFormat(cfg.LogFormat); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ValidateLogLevel accepts debug, info, warn and error.
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("%w: log level must be 'debug', 'info', 'warn', or 'error', got %q", ErrInvalid, level)
}

// ValidateLogFormat accepts text and json.
func ValidateLogFormat(format string) error {
	if format == "text" || format == "json" {
		return nil
	}
	return fmt.Errorf("%w: log format must be 'text' or 'json', got %q", ErrInvalid, format)
}

// getWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getWithDefault(lookup func(string) (string, bool), key, defaultValue string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// getIntWithDefault retrieves an integer environment variable or returns a default value if not set.
func getIntWithDefault(lookup func(string) (string, bool), key string, defaultValue int) (int, error) {
	value, ok := lookup(key)
	if !ok || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, key, err)
	}
	return n, nil
}

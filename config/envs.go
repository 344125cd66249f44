// Package config loads the demo scenario from a .env file and the process
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/grid"
)

// ErrInvalidValue indicates an environment variable that could not be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvWidth         = "GRIDPATH_WIDTH"
	EnvHeight        = "GRIDPATH_HEIGHT"
	EnvWalls         = "GRIDPATH_WALLS"
	EnvStart         = "GRIDPATH_START"
	EnvGoal          = "GRIDPATH_GOAL"
	EnvMode          = "GRIDPATH_MODE"
	EnvHeuristic     = "GRIDPATH_HEURISTIC"
	EnvMaxExpansions = "GRIDPATH_MAX_EXPANSIONS"
	EnvLegacyOpenSet = "GRIDPATH_LEGACY_OPEN_SET"
	defaultEnvFile   = ".env"
)

// Config holds one search scenario.
type Config struct {
	Width         int            // board columns
	Height        int            // board rows
	Walls         []int          // blocked cell indices
	Start         int            // start cell index
	Goal          int            // goal cell index
	Mode          grid.Movement  // adjacency rule
	Heuristic     cost.Heuristic // cost.Auto picks the mode's default
	MaxExpansions int            // closed-node cap, 0 for none
	LegacyOpenSet bool           // disable decrease-key on open cells
}

// Default returns the 7×7 reference scenario: bottom-left to top-right,
// orthogonal movement.
func Default() Config {
	return Config{
		Width:  7,
		Height: 7,
		Walls:  []int{5, 10, 12, 17, 19, 26, 31, 38, 40, 45, 47},
		Start:  42,
		Goal:   6,
		Mode:   grid.Orthogonal,
	}
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. A missing file is not an error, and variables that are
// already set take precedence over file values. Unset variables keep their
// Default values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{defaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: loading %s: %w", f, err)
		}
	}

	cfg := Default()
	var err error
	if cfg.Width, err = getEnvAsInt(EnvWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = getEnvAsInt(EnvHeight, cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.Walls, err = getEnvAsIntList(EnvWalls, cfg.Walls); err != nil {
		return Config{}, err
	}
	if cfg.Start, err = getEnvAsInt(EnvStart, cfg.Start); err != nil {
		return Config{}, err
	}
	if cfg.Goal, err = getEnvAsInt(EnvGoal, cfg.Goal); err != nil {
		return Config{}, err
	}
	if cfg.MaxExpansions, err = getEnvAsInt(EnvMaxExpansions, cfg.MaxExpansions); err != nil {
		return Config{}, err
	}
	if cfg.MaxExpansions < 0 {
		return Config{}, fmt.Errorf("%w: %s=%d must not be negative", ErrInvalidValue, EnvMaxExpansions, cfg.MaxExpansions)
	}
	if cfg.LegacyOpenSet, err = getEnvAsBool(EnvLegacyOpenSet, cfg.LegacyOpenSet); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvMode); ok {
		if cfg.Mode, err = grid.ParseMovement(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, EnvMode, v, err)
		}
	}
	if v, ok := lookup(EnvHeuristic); ok {
		if cfg.Heuristic, err = cost.ParseHeuristic(v); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, EnvHeuristic, v, err)
		}
	}

	return cfg, nil
}

// Grid builds the board described by cfg.
func (c Config) Grid() (*grid.Grid, error) {
	return grid.New(c.Width, c.Height, c.Walls)
}

// lookup returns the trimmed value of key; blank values count as unset.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func getEnvAsInt(key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q must be an integer", ErrInvalidValue, key, v)
	}
	return n, nil
}

func getEnvAsBool(key string, def bool) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q must be a boolean", ErrInvalidValue, key, v)
	}
	return b, nil
}

// getEnvAsIntList parses a comma-separated list such as "5, 10,12".
// An explicitly empty list is written as "-".
func getEnvAsIntList(key string, def []int) ([]int, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	if v == "-" {
		return nil, nil
	}
	fields := strings.Split(v, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s item %q must be an integer", ErrInvalidValue, key, f)
		}
		out = append(out, n)
	}
	return out, nil
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/cost"
	"github.com/katalvlaran/gridpath/grid"
)

var allKeys = []string{
	config.EnvWidth, config.EnvHeight, config.EnvWalls, config.EnvStart,
	config.EnvGoal, config.EnvMode, config.EnvHeuristic, config.EnvMaxExpansions,
	config.EnvLegacyOpenSet,
}

// clearEnv unsets every GRIDPATH_ variable for the duration of the test.
// t.Setenv registers the restore; the Unsetenv leaves the key absent so that
// .env files may fill it.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func missingFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load(missingFile(t))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	g, err := cfg.Grid()
	require.NoError(t, err)
	assert.Equal(t, 49, g.Len())
	assert.Equal(t, cfg.Walls, g.Blocked())
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvWidth, "4")
	t.Setenv(config.EnvHeight, " 3 ")
	t.Setenv(config.EnvWalls, "1, 5,,9")
	t.Setenv(config.EnvStart, "0")
	t.Setenv(config.EnvGoal, "11")
	t.Setenv(config.EnvMode, "Diagonal")
	t.Setenv(config.EnvHeuristic, "chebyshev")
	t.Setenv(config.EnvMaxExpansions, "100")
	t.Setenv(config.EnvLegacyOpenSet, "true")

	cfg, err := config.Load(missingFile(t))
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Width:         4,
		Height:        3,
		Walls:         []int{1, 5, 9},
		Start:         0,
		Goal:          11,
		Mode:          grid.Diagonal,
		Heuristic:     cost.Chebyshev,
		MaxExpansions: 100,
		LegacyOpenSet: true,
	}, cfg)
}

func TestLoad_EmptyWallList(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvWalls, "-")

	cfg, err := config.Load(missingFile(t))
	require.NoError(t, err)
	assert.Empty(t, cfg.Walls)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "scenario.env")
	content := "GRIDPATH_WIDTH=5\nGRIDPATH_HEIGHT=2\nGRIDPATH_WALLS=2,7\nGRIDPATH_START=0\nGRIDPATH_GOAL=4\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	// A variable already in the environment wins over the file.
	t.Setenv(config.EnvGoal, "9")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Width)
	assert.Equal(t, 2, cfg.Height)
	assert.Equal(t, []int{2, 7}, cfg.Walls)
	assert.Equal(t, 9, cfg.Goal)
	assert.Equal(t, grid.Orthogonal, cfg.Mode)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{config.EnvWidth, "seven"},
		{config.EnvHeight, "1.5"},
		{config.EnvWalls, "1,x"},
		{config.EnvStart, "-"},
		{config.EnvGoal, "goal"},
		{config.EnvMode, "hex"},
		{config.EnvHeuristic, "euclid"},
		{config.EnvMaxExpansions, "lots"},
		{config.EnvMaxExpansions, "-5"},
		{config.EnvLegacyOpenSet, "maybe"},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := config.Load(missingFile(t))
			assert.ErrorIs(t, err, config.ErrInvalidValue)
		})
	}
}

func TestLoad_ModeKeepsParseError(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvMode, "hex")

	_, err := config.Load(missingFile(t))
	assert.ErrorIs(t, err, grid.ErrUnknownMovement)
}

func TestLoad_HeuristicKeepsParseError(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvHeuristic, "euclid")

	_, err := config.Load(missingFile(t))
	assert.ErrorIs(t, err, cost.ErrUnknownHeuristic)
}

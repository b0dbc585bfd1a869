package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rating.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadPartialOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
debug_mode = true

[elo]
k_factor = 24

[spa]
base_points_per_match = 20
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, 24, cfg.ELO.KFactor)
	assert.Equal(t, 20, cfg.SPA.BasePointsPerMatch)

	// Keys the file does not name keep their defaults.
	assert.Equal(t, 800, cfg.ELO.RatingFloor)
	assert.Equal(t, 3000, cfg.ELO.RatingCeiling)
	assert.InDelta(t, 1.5, cfg.SPA.WinBonusMultiplier, 1e-9)
}

func TestLoadEmptyFileIsAllDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadDebugEnvOverride(t *testing.T) {
	t.Setenv("RATING_DEBUG", "1")
	cfg, err := Load(writeConfig(t, "[server]\ndebug_mode = false\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Server.Debug)
}

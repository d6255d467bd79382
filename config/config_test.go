package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "islands.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults without file or environment", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeFile(t, `
[log]
level = "debug"

[experiment]
name = "small"
sizes = [2, 4]
games = 3
seed = 99
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, "small", cfg.Experiment.Name)
		require.Equal(t, []int{2, 4}, cfg.Experiment.Sizes)
		require.Equal(t, 3, cfg.Experiment.Games)
		require.Equal(t, uint64(99), cfg.Experiment.Seed)
		require.Equal(t, Default().Experiment.OutDir, cfg.Experiment.OutDir, "Unset keys keep their default")
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeFile(t, "[experiment]\ngames = 3\n")
		t.Setenv("ISLANDS_EXPERIMENT_GAMES", "8")
		t.Setenv("ISLANDS_EXPERIMENT_SIZES", "6,9")
		t.Setenv("ISLANDS_LOG_LEVEL", "warn")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 8, cfg.Experiment.Games)
		require.Equal(t, []int{6, 9}, cfg.Experiment.Sizes)
		require.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		path := writeFile(t, "[experiment]\nboards = 3\n")
		_, err := Load(path)
		require.ErrorContains(t, err, "unknown keys")
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := writeFile(t, "[experiment]\nsizes = [3, 0]\ngames = -1\n")
		_, err := Load(path)
		require.ErrorContains(t, err, "board size must be positive, got 0")
		require.ErrorContains(t, err, "games must be positive, got -1")
	})
}

package main

import (
	"bytes"
	"islands/game"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ISLANDS_LOG_LEVEL", "error")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return ansi.Strip(out.String()), err
}

func TestParsePlacement(t *testing.T) {
	p, err := parsePlacement("W:0,1")
	require.NoError(t, err)
	require.Equal(t, game.Placement{Row: 0, Col: 1, Color: game.White}, p)

	p, err = parsePlacement("black:2, 3")
	require.NoError(t, err)
	require.Equal(t, game.Placement{Row: 2, Col: 3, Color: game.Black}, p)

	for _, bad := range []string{"W0,1", "W:01", "W:a,1", "W:1,b", "E:0,0", ""} {
		_, err := parsePlacement(bad)
		require.Error(t, err, bad)
	}

	_, err = parsePlacement("x:0,0")
	require.ErrorIs(t, err, game.ErrInvalidColor)
}

func TestScoreCmd(t *testing.T) {
	t.Run("prints both counts", func(t *testing.T) {
		out, err := execute(t, "score", "--size", "3", "W:0,1", "W:1,0", "W:1,1", "B:2,2")
		require.NoError(t, err)
		require.Contains(t, out, "islands W 1  B 1  (4 moves, InProgress)")
		require.Contains(t, out, "single-pass: W 1  B 1")
	})

	t.Run("ring is undercounted by the single pass", func(t *testing.T) {
		out, err := execute(t, "score", "-n", "3", "W:0,0", "W:0,1", "W:1,0", "W:1,2", "W:2,1", "W:2,2")
		require.NoError(t, err)
		require.Contains(t, out, "islands W 1  B 0")
		require.Contains(t, out, "single-pass: W 0  B 0")
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := execute(t, "score", "-n", "2", "W:2,0")
		require.ErrorIs(t, err, game.ErrOutOfBounds)
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := execute(t, "score", "-n", "0")
		require.ErrorIs(t, err, game.ErrInvalidSize)
	})
}

func TestPlayCmd(t *testing.T) {
	out, err := execute(t, "play", "-n", "4", "--seed", "7")
	require.NoError(t, err)
	require.Contains(t, out, "(16 moves, Finished)")
	require.Contains(t, out, "winner: ")
}

func TestExperimentCmd(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "experiment", "--games", "2", "--sizes", "2,3", "--out", dir)
	require.NoError(t, err)
	require.Contains(t, out, "4 games")
	require.Contains(t, out, dir)
}

func TestRootRejectsBadConfig(t *testing.T) {
	_, err := execute(t, "--config", "does-not-exist.toml", "score")
	require.Error(t, err)
}

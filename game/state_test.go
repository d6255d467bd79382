package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type mockMove struct {
	cell Cell
}

func (m mockMove) Target() Cell {
	return m.cell
}

func TestNewGameState(t *testing.T) {
	gs, err := NewGameState(2)
	require.NoError(t, err)
	require.Equal(t, "White", gs.Player(), "White should move first")
	require.Len(t, gs.LegalMoves(), 4)
	require.Equal(t, "", gs.Winner())

	_, err = NewGameState(-3)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestGameStatePlay(t *testing.T) {
	t.Run("alternates players and does not mutate the receiver", func(t *testing.T) {
		gs, err := NewGameState(2)
		require.NoError(t, err)

		next := gs.Play(Placement{Row: 0, Col: 0, Color: White}).(*GameState)

		require.Equal(t, "Black", next.Player())
		require.Len(t, next.LegalMoves(), 3)
		require.Equal(t, 1, next.Board.Moves())
		require.Equal(t, 0, gs.Board.Moves(), "Play should return a new copy")
		require.Len(t, gs.LegalMoves(), 4)
	})

	t.Run("legal moves carry the current color in row-major order", func(t *testing.T) {
		gs, err := NewGameState(2)
		require.NoError(t, err)
		next := gs.Play(Placement{Row: 0, Col: 1, Color: White})

		require.Equal(t, []Move{
			Placement{Row: 0, Col: 0, Color: Black},
			Placement{Row: 1, Col: 0, Color: Black},
			Placement{Row: 1, Col: 1, Color: Black},
		}, next.LegalMoves())
	})

	t.Run("panics on occupied cell", func(t *testing.T) {
		gs, err := NewGameState(2)
		require.NoError(t, err)
		next := gs.Play(Placement{Row: 0, Col: 0, Color: White})

		require.Panics(t, func() {
			next.Play(Placement{Row: 0, Col: 0, Color: Black})
		})
	})

	t.Run("panics on wrong color", func(t *testing.T) {
		gs, err := NewGameState(2)
		require.NoError(t, err)
		require.Panics(t, func() {
			gs.Play(Placement{Row: 0, Col: 0, Color: Black})
		})
	})

	t.Run("panics on unknown move type", func(t *testing.T) {
		gs, err := NewGameState(2)
		require.NoError(t, err)
		require.Panics(t, func() {
			gs.Play(mockMove{cell: Cell{0, 0}})
		})
	})

	t.Run("panics out of bounds", func(t *testing.T) {
		gs, err := NewGameState(2)
		require.NoError(t, err)
		require.Panics(t, func() {
			gs.Play(Placement{Row: 5, Col: 0, Color: White})
		})
	})
}

func TestGameStateWinner(t *testing.T) {
	play := func(t *testing.T, size int, cells ...Cell) State {
		t.Helper()
		gs, err := NewGameState(size)
		require.NoError(t, err)
		var s State = gs
		for _, c := range cells {
			s = s.Play(Placement{Row: c.Row, Col: c.Col, Color: s.(*GameState).Current})
		}
		return s
	}

	t.Run("more islands wins on a full board", func(t *testing.T) {
		// White: (0,0),(1,1) joined by the diagonal. Black: (0,1),(1,0) apart.
		s := play(t, 2, Cell{0, 0}, Cell{0, 1}, Cell{1, 1}, Cell{1, 0})

		require.Empty(t, s.LegalMoves())
		require.Equal(t, "Black", s.Winner())
	})

	t.Run("draw on equal scores", func(t *testing.T) {
		// White: (0,0),(0,1). Black: (1,0),(1,1).
		s := play(t, 2, Cell{0, 0}, Cell{1, 0}, Cell{0, 1}, Cell{1, 1})
		require.Equal(t, Draw, s.Winner())
	})

	t.Run("no winner in progress", func(t *testing.T) {
		s := play(t, 3, Cell{0, 0})
		require.Equal(t, "", s.Winner())
	})
}

func TestGameStateHash(t *testing.T) {
	gs, err := NewGameState(3)
	require.NoError(t, err)

	a := gs.Play(Placement{Row: 0, Col: 0, Color: White})
	b := gs.Play(Placement{Row: 0, Col: 0, Color: White})
	c := gs.Play(Placement{Row: 0, Col: 1, Color: White})

	require.Equal(t, a.Hash(), b.Hash(), "Equal states should hash equally")
	require.NotEqual(t, a.Hash(), c.Hash())
	require.NotEqual(t, gs.Hash(), a.Hash())
}

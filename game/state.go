package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState is a Board plus whose turn it is. White moves first and the
// players alternate. It implements State.
type GameState struct {
	Board   *Board // Colors and move count
	Current Color  // The color to place next
}

// NewGameState initializes and returns an empty size×size game with White to move.
func NewGameState(size int) (*GameState, error) {
	b, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	return &GameState{
		Board:   b,
		Current: White,
	}, nil
}

func (gs GameState) Copy() *GameState {
	return &GameState{
		Board:   gs.Board.Copy(),
		Current: gs.Current,
	}
}

// Player returns the color name of the player to move.
func (gs GameState) Player() string {
	return gs.Current.String()
}

// LegalMoves returns a placement of the current color on every empty cell, in
// row-major order. A finished game has no legal moves.
func (gs GameState) LegalMoves() []Move {
	if gs.Board.Status() == Finished {
		return nil
	}

	g := gs.Board.graph
	moves := make([]Move, 0, g.Cells()-gs.Board.moves)
	for id, color := range g.colors {
		if color != Empty {
			continue
		}
		cell := g.cell(id)
		moves = append(moves, Placement{Row: cell.Row, Col: cell.Col, Color: gs.Current})
	}
	return moves
}

// Play returns the state after move. It panics if move is not a Placement that
// can be made, the same way other contract violations surface in this package.
func (gs GameState) Play(move Move) State {
	newGs, err := gs.apply(move)
	if err != nil {
		panic(err)
	}
	return newGs
}

func (gs GameState) apply(move Move) (*GameState, error) {
	placement, ok := move.(Placement)
	if !ok {
		return nil, fmt.Errorf("unexpected move type %T", move)
	}
	if placement.Color != gs.Current {
		return nil, fmt.Errorf("cannot play %s: it is %s's turn", placement, gs.Current)
	}
	free, err := gs.Board.CanPlay(placement.Row, placement.Col)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, fmt.Errorf("cannot play %s: cell is occupied", placement)
	}

	newGs := gs.Copy()
	if _, err := newGs.Board.MakePlay(placement.Row, placement.Col, placement.Color); err != nil {
		return nil, err
	}
	newGs.Current = gs.Current.Opponent()
	return newGs, nil
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash current player
	binary.Write(hasher, binary.LittleEndian, int8(gs.Current))

	// Hash colors
	binary.Write(hasher, binary.LittleEndian, gs.Board.graph.colors)

	return StateHash(hasher.Sum64())
}

// Winner returns "" while the game is in progress. On a full board it returns
// the color with more islands, or Draw.
func (gs GameState) Winner() string {
	if gs.Board.Status() != Finished {
		return ""
	}

	white, black := gs.Board.WhiteScore(), gs.Board.BlackScore()
	switch {
	case white > black:
		return White.String()
	case black > white:
		return Black.String()
	default:
		return Draw
	}
}

package player

import (
	"islands/game"

	"golang.org/x/exp/rand"
)

// Player chooses the next placement for whoever is to move in state.
type Player interface {
	// FindMove returns nil when state has no legal moves.
	FindMove(state game.State) game.Move
}

type randomPlayer struct {
	rng *rand.Rand
}

// NewRandomPlayer returns a player that picks uniformly among the legal moves.
// The same seed replays the same choices.
func NewRandomPlayer(seed uint64) Player {
	return &randomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *randomPlayer) FindMove(state game.State) game.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil
	}
	return moves[p.rng.Intn(len(moves))]
}

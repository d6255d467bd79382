package player

import "islands/game"

type scriptedPlayer struct {
	script []game.Cell
	next   int
}

// NewScriptedPlayer returns a player that places on the given cells in order,
// skipping cells that are no longer free. Once the script runs out it takes
// the first legal move.
func NewScriptedPlayer(script []game.Cell) Player {
	return &scriptedPlayer{script: script}
}

func (p *scriptedPlayer) FindMove(state game.State) game.Move {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil
	}

	for p.next < len(p.script) {
		cell := p.script[p.next]
		p.next++
		for _, move := range moves {
			if move.Target() == cell {
				return move
			}
		}
	}
	return moves[0]
}

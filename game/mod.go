package game

// Draw is reported by Winner when a full board leaves both colors with the same score.
const Draw = "Draw"

type Move interface {
	Target() Cell
}

type StateHash uint64

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() string
	LegalMoves() []Move
	Play(Move) State
	Hash() StateHash
	Winner() string
}

package game

import "fmt"

type Status int

const (
	InProgress Status = iota
	Finished
)

func (s Status) String() string {
	if s == Finished {
		return "Finished"
	}
	return "InProgress"
}

// Board validates placements, counts moves and scores islands over a Graph.
// A Board is not safe for concurrent use.
type Board struct {
	graph *Graph
	moves int // Placements made, including overwrites
}

// NewBoard creates an empty size×size board.
func NewBoard(size int) (*Board, error) {
	g, err := NewGraph(size)
	if err != nil {
		return nil, err
	}
	return &Board{graph: g}, nil
}

func (b *Board) Size() int {
	return b.graph.Size()
}

// Moves returns the number of placements made so far.
func (b *Board) Moves() int {
	return b.moves
}

func (b *Board) ColorOf(row, col int) (Color, error) {
	return b.graph.ColorOf(row, col)
}

// NeighborsOf returns the cells adjacent to (row, col).
func (b *Board) NeighborsOf(row, col int) ([]Cell, error) {
	return b.graph.NeighborsOf(row, col)
}

// CanPlay reports whether (row, col) is empty.
func (b *Board) CanPlay(row, col int) (bool, error) {
	color, err := b.graph.ColorOf(row, col)
	if err != nil {
		return false, err
	}
	return color == Empty, nil
}

// MakePlay places a token and reports whether the game is over.
//
// The target cell is overwritten even if it is occupied; callers check CanPlay
// first. The move counter is incremented on every successful call.
func (b *Board) MakePlay(row, col int, color Color) (bool, error) {
	if !color.IsPlayer() {
		return false, fmt.Errorf("%w: cannot place %s", ErrInvalidColor, color)
	}
	if err := b.graph.SetColor(row, col, color); err != nil {
		return false, err
	}
	b.moves++

	// TODO: a White island touching top and bottom or a Black island touching
	// left and right should also end the game; only a full board does today.
	return b.Status() == Finished, nil
}

// Status is Finished once the move counter has reached size². It never goes back.
func (b *Board) Status() Status {
	if b.moves >= b.graph.Cells() {
		return Finished
	}
	return InProgress
}

// Copy returns an independent board with the same colors and move count.
func (b *Board) Copy() *Board {
	return &Board{
		graph: b.graph.Copy(),
		moves: b.moves,
	}
}

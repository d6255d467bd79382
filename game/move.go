package game

import "fmt"

// Placement puts a token of Color on a cell.
type Placement struct {
	Row   int
	Col   int
	Color Color
}

func (p Placement) Target() Cell {
	return Cell{Row: p.Row, Col: p.Col}
}

func (p Placement) String() string {
	return fmt.Sprintf("%s@%d,%d", p.Color, p.Row, p.Col)
}

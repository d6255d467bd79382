package game

import (
	"fmt"
	"strings"
)

// Color is the state of a single cell.
type Color int8

const (
	Empty Color = iota // 0, default for every cell
	White              // 1
	Black              // 2
)

func (c Color) String() string {
	switch c {
	case Empty:
		return "Empty"
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return fmt.Sprintf("Color(%d)", int8(c))
	}
}

// IsPlayer reports whether tokens of this color can be placed.
func (c Color) IsPlayer() bool {
	return c == White || c == Black
}

// Opponent returns the other player's color. Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

// ParseColor accepts "white"/"w" and "black"/"b" in any case.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "w", "white":
		return White, nil
	case "b", "black":
		return Black, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

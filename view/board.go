// Package view renders boards for the terminal.
package view

import (
	"fmt"
	"islands/game"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite = lipgloss.Color("255")
	colorBlack = lipgloss.Color("167")
	colorDim   = lipgloss.Color("240")
)

var (
	styleWhite = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleBlack = lipgloss.NewStyle().Bold(true).Foreground(colorBlack)
	styleEmpty = lipgloss.NewStyle().Foreground(colorDim)
	styleTitle = lipgloss.NewStyle().Bold(true)
)

const (
	glyphWhite = "W"
	glyphBlack = "B"
	glyphEmpty = "."
)

// Glyph returns the styled single-character form of a color.
func Glyph(c game.Color) string {
	switch c {
	case game.White:
		return styleWhite.Render(glyphWhite)
	case game.Black:
		return styleBlack.Render(glyphBlack)
	default:
		return styleEmpty.Render(glyphEmpty)
	}
}

// Render draws the board with every row shifted one column left of the row
// above, so a cell's six neighbours sit around it, followed by the scores.
func Render(b *game.Board) string {
	var sb strings.Builder
	size := b.Size()
	for row := 0; row < size; row++ {
		sb.WriteString(strings.Repeat(" ", size-1-row))
		for col := 0; col < size; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			color, _ := b.ColorOf(row, col)
			sb.WriteString(Glyph(color))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(Scores(b))
	return sb.String()
}

// Scores formats the island count of both colors and the board status.
func Scores(b *game.Board) string {
	return fmt.Sprintf("%s %s %d  %s %d  %s",
		styleTitle.Render("islands"),
		Glyph(game.White), b.WhiteScore(),
		Glyph(game.Black), b.BlackScore(),
		styleEmpty.Render(fmt.Sprintf("(%d moves, %s)", b.Moves(), b.Status())),
	)
}

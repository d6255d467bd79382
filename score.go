package main

import (
	"fmt"
	"islands/game"
	"islands/meta"
	"islands/view"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newScoreCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "score [COLOR:ROW,COL]...",
		Short: "Place tokens on an empty board and print both island counts",
		Example: `  islands score --size 3 W:0,1 W:1,0 W:1,1
  islands score -n 5 b:2,2 black:3,3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := game.NewBoard(size)
			if err != nil {
				return err
			}

			for _, arg := range args {
				p, err := parsePlacement(arg)
				if err != nil {
					return err
				}
				if _, err := b.MakePlay(p.Row, p.Col, p.Color); err != nil {
					return fmt.Errorf("%s: %w", arg, err)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, view.Render(b))
			fmt.Fprintf(out, "single-pass: %s %d  %s %d\n",
				view.Glyph(game.White), b.HeuristicScoreFor(game.White),
				view.Glyph(game.Black), b.HeuristicScoreFor(game.Black))
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", meta.DEFAULT_SIZE, "board edge length")
	return cmd
}

// parsePlacement reads COLOR:ROW,COL, e.g. "W:0,1" or "black:2,2".
func parsePlacement(s string) (game.Placement, error) {
	colorPart, cellPart, ok := strings.Cut(s, ":")
	if !ok {
		return game.Placement{}, fmt.Errorf("placement %q: expected COLOR:ROW,COL", s)
	}
	color, err := game.ParseColor(colorPart)
	if err != nil {
		return game.Placement{}, fmt.Errorf("placement %q: %w", s, err)
	}

	rowPart, colPart, ok := strings.Cut(cellPart, ",")
	if !ok {
		return game.Placement{}, fmt.Errorf("placement %q: expected ROW,COL", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowPart))
	if err != nil {
		return game.Placement{}, fmt.Errorf("placement %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colPart))
	if err != nil {
		return game.Placement{}, fmt.Errorf("placement %q: col: %w", s, err)
	}

	return game.Placement{Row: row, Col: col, Color: color}, nil
}

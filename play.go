package main

import (
	"fmt"
	"islands/engine"
	"islands/meta"
	"islands/player"
	"islands/view"

	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	var size int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one random self-play game and print the final board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			players := []player.Player{
				player.NewRandomPlayer(seed),
				player.NewRandomPlayer(seed + 1),
			}
			e, err := engine.LocalEngine(players, size)
			if err != nil {
				return err
			}

			winner, _, _ := e.Run()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, view.Render(e.State.Board))
			fmt.Fprintf(out, "winner: %s\n", winner)
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", meta.DEFAULT_SIZE, "board edge length")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed for White; Black uses seed+1")
	return cmd
}

package cmd

import (
	"github.com/spf13/cobra"
)

const streakBarWidth = 40

var streakCmd = &cobra.Command{
	Use:   "streak DECK",
	Short: "Show the deck's current streak",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openPlanner()
		if err != nil {
			return err
		}
		defer closeFn()

		ctx := cmd.Context()
		deck, err := svc.Deck(ctx, args[0])
		if err != nil {
			return err
		}
		st, err := svc.Streak(ctx, deck.ID)
		if err != nil {
			return err
		}
		return env.renderer.Streak(cmd.OutOrStdout(), deck.Name, st, streakBarWidth)
	},
}

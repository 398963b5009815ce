package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cadence/internal/planner"
)

var historyCmd = &cobra.Command{
	Use:   "history DECK",
	Short: "List recent day status changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

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
		events, err := svc.History(ctx, deck.ID, limit)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		return env.renderer.History(cmd.OutOrStdout(), events)
	},
}

func init() {
	historyCmd.Flags().Int("limit", planner.DefaultHistoryLimit, "Max events to show")
}

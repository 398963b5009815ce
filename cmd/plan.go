package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/cadence/internal/projection"
)

var planCmd = &cobra.Command{
	Use:   "plan DECK",
	Short: "Show the deck's timeline with the stages due each day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lookahead, _ := cmd.Flags().GetInt("lookahead")
		if !cmd.Flags().Changed("lookahead") {
			lookahead = env.cfg.Lookahead
		}
		from, _ := cmd.Flags().GetString("from")

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

		var days []projection.Day
		if from != "" {
			date, err := parseDay(from)
			if err != nil {
				return err
			}
			days, err = svc.ProjectionFrom(ctx, deck, lookahead, date)
			if err != nil {
				return err
			}
		} else {
			days, err = svc.Projection(ctx, deck, lookahead)
			if err != nil {
				return err
			}
		}
		return env.renderer.Projection(cmd.OutOrStdout(), deck.Name, days, today())
	},
}

func init() {
	planCmd.Flags().Int("lookahead", projection.DefaultLookahead, "Future days to project (default from CADENCE_LOOKAHEAD)")
	planCmd.Flags().String("from", "", "Start the listing at this persisted day (YYYY-MM-DD, today, yesterday)")
}

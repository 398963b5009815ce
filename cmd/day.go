package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cadence/internal/chrono"
	"github.com/abhisek/cadence/internal/planner"
	"github.com/abhisek/cadence/internal/streak"
)

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Record study days",
}

var dayAdvanceCmd = &cobra.Command{
	Use:   "advance DECK",
	Short: "Add the days missing between the deck's last day and today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openPlanner()
		if err != nil {
			return err
		}
		defer closeFn()

		deck, err := svc.Deck(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		added, err := svc.Advance(cmd.Context(), deck.ID, today())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %d day(s) to %s.\n", len(added), deck.Name)
		return nil
	},
}

var daySetCmd = &cobra.Command{
	Use:   "set DECK DATE STATUS",
	Short: "Set the status of a day (not_started, in_progress, completed, off)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := chrono.ParseStatus(args[2])
		if err != nil {
			return err
		}
		return setDayStatus(cmd, args[0], args[1], status)
	},
}

var dayOffCmd = &cobra.Command{
	Use:   "off DECK [DATE]",
	Short: "Take a rest day (default today)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := "today"
		if len(args) == 2 {
			date = args[1]
		}
		return setDayStatus(cmd, args[0], date, chrono.StatusOff)
	},
}

func setDayStatus(cmd *cobra.Command, deckRef, dateArg string, status chrono.Status) error {
	date, err := parseDay(dateArg)
	if err != nil {
		return err
	}
	if date.After(today()) {
		return fmt.Errorf("%s: %w", chrono.FormatDate(date), planner.ErrFutureDay)
	}

	svc, closeFn, err := openPlanner()
	if err != nil {
		return err
	}
	defer closeFn()

	ctx := cmd.Context()
	deck, err := svc.Deck(ctx, deckRef)
	if err != nil {
		return err
	}
	if _, err := svc.Advance(ctx, deck.ID, today()); err != nil {
		return err
	}

	outcome, err := svc.SetStatus(ctx, deck.ID, date, status)
	if err != nil {
		return err
	}
	st, err := svc.Streak(ctx, deck.ID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s: %s.\n", deck.Name, chrono.FormatDate(date), status.DisplayName())
	fmt.Fprintf(out, "Streak %s, now %d.\n", streak.Describe(outcome), st.Count)
	return nil
}

func init() {
	dayCmd.AddCommand(dayAdvanceCmd)
	dayCmd.AddCommand(daySetCmd)
	dayCmd.AddCommand(dayOffCmd)
}

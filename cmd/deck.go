package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage flashcard decks",
}

var deckCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a deck starting today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, _ := cmd.Flags().GetString("profile")
		if profile == "" {
			profile = env.cfg.Profile
		}

		svc, closeFn, err := openPlanner()
		if err != nil {
			return err
		}
		defer closeFn()

		deck, err := svc.CreateDeck(cmd.Context(), args[0], profile, today())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created deck %q with profile %s.\n", deck.Name, deck.Profile)
		return nil
	},
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List decks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := openPlanner()
		if err != nil {
			return err
		}
		defer closeFn()

		decks, err := svc.Decks(cmd.Context())
		if err != nil {
			return fmt.Errorf("list decks: %w", err)
		}
		return env.renderer.Decks(cmd.OutOrStdout(), decks)
	},
}

func init() {
	deckCreateCmd.Flags().String("profile", "", "Schedule profile (default from CADENCE_PROFILE)")

	deckCmd.AddCommand(deckCreateCmd)
	deckCmd.AddCommand(deckListCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cadence/internal/spacedrep"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect schedule profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := env.cfg.Registry()
		if err != nil {
			return err
		}
		for _, name := range profiles.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show PROFILE",
	Short: "Show a profile's stage recurrences",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := env.cfg.Registry()
		if err != nil {
			return err
		}
		p, err := profiles.Lookup(args[0])
		if err != nil {
			return err
		}
		return env.renderer.Profile(cmd.OutOrStdout(), p)
	},
}

var profileValidateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a YAML profile file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := spacedrep.LoadProfileFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: profile %q is valid.\n", args[0], p.Name)
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileValidateCmd)
}

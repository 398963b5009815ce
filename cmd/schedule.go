package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/cadence/internal/spacedrep"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print a profile's synthetic schedule",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("profile")
		if name == "" {
			name = env.cfg.Profile
		}
		horizon, _ := cmd.Flags().GetInt("days")
		if !cmd.Flags().Changed("days") {
			horizon = env.cfg.Horizon
		}

		profiles, err := env.cfg.Registry()
		if err != nil {
			return err
		}
		p, err := profiles.Lookup(name)
		if err != nil {
			return err
		}
		return env.renderer.Schedule(cmd.OutOrStdout(), p.Name, spacedrep.Build(p, horizon))
	},
}

func init() {
	scheduleCmd.Flags().String("profile", "", "Schedule profile (default from CADENCE_PROFILE)")
	scheduleCmd.Flags().Int("days", spacedrep.DefaultHorizon, "Number of days (default from CADENCE_HORIZON)")
}

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/cadence/internal/rollover"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Append each new day to every deck on a schedule",
	Long: "Runs until interrupted. Every deck is rolled over once at startup and then " +
		"on each CADENCE_ROLLOVER_CRON tick (default @daily) in CADENCE_TZ.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := env.cfg.Location()
		if err != nil {
			return err
		}

		svc, closeFn, err := openPlanner()
		if err != nil {
			return err
		}
		defer closeFn()

		d, err := rollover.New(svc, env.cfg.RolloverCron, loc, env.log)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return d.Run(ctx)
	},
}

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/cadence/internal/chrono"
	"github.com/abhisek/cadence/internal/config"
	"github.com/abhisek/cadence/internal/logging"
	"github.com/abhisek/cadence/internal/planner"
	"github.com/abhisek/cadence/internal/store"
	"github.com/abhisek/cadence/internal/ui/render"
)

var rootCmd = &cobra.Command{
	Use:   "cadence",
	Short: "Spaced-repetition study planner",
	Long: "Cadence plans which stages of a flashcard deck are due each day, " +
		"tracks the days you actually studied, and keeps your streak.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

// env is the per-invocation runtime built from config and flags.
var env struct {
	cfg      config.Config
	log      zerolog.Logger
	renderer render.Renderer
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CADENCE_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error (overrides CADENCE_LOG_LEVEL)")
	rootCmd.PersistentFlags().Bool("plain", false, "Disable colors (same as CADENCE_NO_COLOR=1)")

	rootCmd.AddCommand(deckCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the environment config and applies flag overrides.
func setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	plain, _ := cmd.Flags().GetBool("plain")

	env.cfg = cfg
	env.log = logging.New(cfg.Logging())
	env.renderer = render.Renderer{Plain: plain || cfg.NoColor}
	return nil
}

// openPlanner opens the store and returns a planner bound to it. The
// returned func closes the store.
func openPlanner() (*planner.Service, func(), error) {
	dbPath, err := env.cfg.ResolveDBPath()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	profiles, err := env.cfg.Registry()
	if err != nil {
		return nil, nil, err
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	env.log.Debug().Str("db", dbPath).Msg("store opened")

	return planner.NewFromStore(s, profiles, env.log), func() { s.Close() }, nil
}

// today returns the current civil date in the configured timezone.
func today() time.Time {
	loc, err := env.cfg.Location()
	if err != nil {
		loc = time.Local
	}
	return chrono.Day(time.Now().In(loc))
}

// parseDay accepts YYYY-MM-DD, "today" or "yesterday".
func parseDay(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return today(), nil
	case "yesterday":
		return today().AddDate(0, 0, -1), nil
	}
	d, err := chrono.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD, today or yesterday)", s)
	}
	return d, nil
}

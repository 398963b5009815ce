// Package rollover appends the new calendar day to every deck on a cron
// schedule so timelines never have gaps, even when nobody opens the app.
package rollover

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/abhisek/cadence/internal/chrono"
)

// Roller advances every deck to the given day.
type Roller interface {
	RolloverAll(ctx context.Context, today time.Time) (int, error)
}

// Daemon runs Roller on a schedule.
type Daemon struct {
	roller Roller
	spec   string
	loc    *time.Location
	log    zerolog.Logger

	parser cron.Parser
	now    func() time.Time

	mu   sync.Mutex
	last time.Time
}

// New validates spec and returns a daemon firing in loc. Specs use five
// fields or a descriptor such as @daily.
func New(r Roller, spec string, loc *time.Location, log zerolog.Logger) (*Daemon, error) {
	if loc == nil {
		loc = time.Local
	}
	d := &Daemon{
		roller: r,
		spec:   strings.TrimSpace(spec),
		loc:    loc,
		log:    log,
		parser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
		now:    time.Now,
	}
	if _, err := d.parser.Parse(d.spec); err != nil {
		return nil, fmt.Errorf("rollover schedule %q: %w", spec, err)
	}
	return d, nil
}

// Today returns the current civil date in the daemon's location.
func (d *Daemon) Today() time.Time {
	return chrono.Day(d.now().In(d.loc))
}

// RunOnce rolls every deck over to today.
func (d *Daemon) RunOnce(ctx context.Context) error {
	today := d.Today()
	n, err := d.roller.RolloverAll(ctx, today)

	d.mu.Lock()
	d.last = today
	d.mu.Unlock()

	if err != nil {
		return err
	}
	d.log.Debug().Str("day", chrono.FormatDate(today)).Int("days", n).Msg("rollover tick")
	return nil
}

// LastRun returns the day of the most recent rollover, or the zero time.
func (d *Daemon) LastRun() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

// Run catches up immediately, then rolls over on every tick until ctx is
// done. Ticks never overlap.
func (d *Daemon) Run(ctx context.Context) error {
	if err := d.RunOnce(ctx); err != nil {
		d.log.Error().Err(err).Msg("catch-up rollover failed")
	}

	c := cron.New(
		cron.WithParser(d.parser),
		cron.WithLocation(d.loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := c.AddFunc(d.spec, func() {
		if err := d.RunOnce(ctx); err != nil {
			d.log.Error().Err(err).Msg("rollover failed")
		}
	}); err != nil {
		return fmt.Errorf("schedule rollover: %w", err)
	}

	c.Start()
	d.log.Info().Str("schedule", d.spec).Str("tz", d.loc.String()).Msg("rollover daemon started")

	<-ctx.Done()
	<-c.Stop().Done()

	d.log.Info().Msg("rollover daemon stopped")
	return nil
}

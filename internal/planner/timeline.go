package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/cadence/internal/chrono"
	"github.com/abhisek/cadence/internal/projection"
	"github.com/abhisek/cadence/internal/spacedrep"
	"github.com/abhisek/cadence/internal/store"
	"github.com/abhisek/cadence/internal/streak"
)

// Advance appends a NOT_STARTED day for every date after the deck's latest
// day up to and including today, so the timeline has no calendar gaps.
// It returns the appended days.
func (s *Service) Advance(ctx context.Context, deckID string, today time.Time) ([]chrono.Entry, error) {
	latest, err := s.days.Latest(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("latest day: %w", err)
	}

	today = chrono.Day(today)
	var added []chrono.Entry
	for d := chrono.Day(latest.Date).AddDate(0, 0, 1); !d.After(today); d = d.AddDate(0, 0, 1) {
		e, err := s.days.Append(ctx, deckID, d, chrono.StatusNotStarted)
		if err != nil {
			return added, err
		}
		added = append(added, e)
	}

	if len(added) > 0 {
		s.log.Debug().
			Str("deck", deckID).
			Int("days", len(added)).
			Str("through", chrono.FormatDate(today)).
			Msg("timeline advanced")
	}
	return added, nil
}

// RolloverAll advances every deck to today. Errors on one deck are logged
// and do not stop the others; the first error is returned.
func (s *Service) RolloverAll(ctx context.Context, today time.Time) (int, error) {
	decks, err := s.decks.List(ctx)
	if err != nil {
		return 0, err
	}

	var (
		total    int
		firstErr error
	)
	for _, d := range decks {
		added, err := s.Advance(ctx, d.ID, today)
		total += len(added)
		if err != nil {
			s.log.Error().Err(err).Str("deck", d.Name).Msg("rollover failed")
			if firstErr == nil {
				firstErr = fmt.Errorf("deck %s: %w", d.Name, err)
			}
		}
	}

	s.log.Info().Int("decks", len(decks)).Int("days", total).Msg("rollover complete")
	return total, firstErr
}

// SetStatus moves the deck's day on date to status, records the change and
// recalculates the streak. The day must exist; call Advance first for today.
func (s *Service) SetStatus(ctx context.Context, deckID string, date time.Time, status chrono.Status) (streak.Outcome, error) {
	day, err := s.days.ByDate(ctx, deckID, date)
	if err != nil {
		return nil, fmt.Errorf("day %s: %w", chrono.FormatDate(chrono.Day(date)), err)
	}
	if err := chrono.CheckTransition(day.Status, status); err != nil {
		return nil, err
	}

	if err := s.days.UpdateStatus(ctx, day.ID, status); err != nil {
		return nil, err
	}
	if err := s.events.AppendDayEvent(ctx, store.DayEventData{
		DeckID: deckID,
		DayID:  day.ID,
		Date:   day.Date,
		From:   day.Status,
		To:     status,
	}); err != nil {
		s.log.Warn().Err(err).Str("deck", deckID).Msg("failed to record day event")
	}

	s.log.Info().
		Str("deck", deckID).
		Str("day", chrono.FormatDate(day.Date)).
		Str("from", string(day.Status)).
		Str("status", string(status)).
		Msg("day status changed")

	_, outcome, err := s.RecalculateStreak(ctx, deckID)
	return outcome, err
}

// TakeDayOff marks the deck's day on date as a rest day.
func (s *Service) TakeDayOff(ctx context.Context, deckID string, date time.Time) (streak.Outcome, error) {
	return s.SetStatus(ctx, deckID, date, chrono.StatusOff)
}

// Timeline returns the deck's persisted days in date order.
func (s *Service) Timeline(ctx context.Context, deckID string) ([]chrono.Entry, error) {
	return s.days.Timeline(ctx, deckID)
}

// Projection merges the deck's timeline with its profile's schedule and
// lookaheadDays future days.
func (s *Service) Projection(ctx context.Context, deck *store.Deck, lookaheadDays int) ([]projection.Day, error) {
	p, err := s.Profile(deck)
	if err != nil {
		return nil, err
	}
	tl, err := s.days.Timeline(ctx, deck.ID)
	if err != nil {
		return nil, err
	}
	days, err := projection.Project(tl, p, lookaheadDays)
	if err != nil {
		s.log.Error().Err(err).Str("deck", deck.Name).Msg("timeline is corrupted")
		return nil, err
	}
	return days, nil
}

// ProjectionFrom is Projection starting at the deck's day on date.
func (s *Service) ProjectionFrom(ctx context.Context, deck *store.Deck, lookaheadDays int, date time.Time) ([]projection.Day, error) {
	p, err := s.Profile(deck)
	if err != nil {
		return nil, err
	}
	day, err := s.days.ByDate(ctx, deck.ID, date)
	if err != nil {
		return nil, fmt.Errorf("day %s: %w", chrono.FormatDate(chrono.Day(date)), err)
	}
	tl, err := s.days.Timeline(ctx, deck.ID)
	if err != nil {
		return nil, err
	}
	return projection.ProjectFrom(tl, p, lookaheadDays, day.ID)
}

// Schedule returns the synthetic schedule of profile for horizonDays days.
func (s *Service) Schedule(profile string, horizonDays int) ([]spacedrep.ScheduleDay, error) {
	p, err := s.profiles.Lookup(profile)
	if err != nil {
		return nil, err
	}
	return spacedrep.Build(p, horizonDays), nil
}

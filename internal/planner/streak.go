package planner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/abhisek/cadence/internal/chrono"
	"github.com/abhisek/cadence/internal/store"
	"github.com/abhisek/cadence/internal/streak"
)

// Streak returns the deck's stored streak state without recalculating it.
// A deck that never recalculated has a zero state.
func (s *Service) Streak(ctx context.Context, deckID string) (streak.State, error) {
	rec, err := s.streaks.Get(ctx, deckID)
	if err != nil {
		return streak.State{}, err
	}
	if rec == nil {
		return streak.State{}, nil
	}
	return rec.State, nil
}

// RecalculateStreak scans the deck's timeline from its first day and saves
// the result together with a fingerprint of the timeline. When the timeline
// is unchanged since the last save, the stored state is returned as is with
// a NoChange outcome.
//
// Every scan starts from a zero state, so the stored count is a function of
// the timeline alone: the run of completed days ending at the latest day.
func (s *Service) RecalculateStreak(ctx context.Context, deckID string) (streak.State, streak.Outcome, error) {
	tl, err := s.days.Timeline(ctx, deckID)
	if err != nil {
		return streak.State{}, nil, err
	}
	fp := fingerprint(tl)

	stored, err := s.streaks.Get(ctx, deckID)
	if err != nil {
		return streak.State{}, nil, err
	}
	var before int
	if stored != nil {
		if stored.Fingerprint == fp {
			return stored.State, streak.NoChange{}, nil
		}
		before = stored.State.Count
	}

	var st streak.State
	outcome, err := streak.CalcDayStreak(&st, tl)
	if err != nil {
		return streak.State{}, nil, fmt.Errorf("calculate streak: %w", err)
	}

	switch o := outcome.(type) {
	case streak.Progress:
		s.log.Info().Str("deck", deckID).Int("was", before).Int("streak", st.Count).Msg("streak updated")
		if streak.Crossed(before, st.Count) {
			s.log.Info().Str("deck", deckID).Int("streak", st.Count).Msg("streak milestone reached")
		}
	case streak.Reset:
		if before > 0 {
			s.log.Info().Str("deck", deckID).Int("was", before).Msg("streak reset")
		}
	case streak.NoChange:
	default:
		panic(fmt.Sprintf("planner: unknown streak outcome %T", o))
	}

	if err := s.streaks.Save(ctx, deckID, store.StreakRecord{State: st, Fingerprint: fp}); err != nil {
		return streak.State{}, nil, err
	}
	return st, outcome, nil
}

// fingerprint identifies a timeline by the id, date and status of every day.
func fingerprint(timeline []chrono.Entry) string {
	h := sha256.New()
	for _, e := range timeline {
		h.Write([]byte(strconv.FormatInt(e.ID, 10)))
		h.Write([]byte{'|'})
		h.Write([]byte(chrono.FormatDate(e.Date)))
		h.Write([]byte{'|'})
		h.Write([]byte(e.Status))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

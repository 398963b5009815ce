// Package planner is the host-side glue around the planning core: it loads
// deck timelines from the store, runs the projector and streak scanner, and
// persists what they return.
package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abhisek/cadence/internal/chrono"
	"github.com/abhisek/cadence/internal/spacedrep"
	"github.com/abhisek/cadence/internal/store"
)

// ErrDeckExists is returned when creating a deck whose name is taken.
var ErrDeckExists = errors.New("deck already exists")

// ErrFutureDay is returned when a day after today is requested.
var ErrFutureDay = errors.New("day is in the future")

// Service manages decks, their timelines and streaks.
type Service struct {
	decks    store.DeckRepo
	days     store.DayRepo
	streaks  store.StreakRepo
	events   store.EventRepo
	profiles *spacedrep.Registry
	log      zerolog.Logger
}

// Repos groups the repositories a Service reads and writes.
type Repos struct {
	Decks   store.DeckRepo
	Days    store.DayRepo
	Streaks store.StreakRepo
	Events  store.EventRepo
}

// NewService creates a planner service.
func NewService(repos Repos, profiles *spacedrep.Registry, log zerolog.Logger) *Service {
	if profiles == nil {
		profiles = spacedrep.NewRegistry()
	}
	return &Service{
		decks:    repos.Decks,
		days:     repos.Days,
		streaks:  repos.Streaks,
		events:   repos.Events,
		profiles: profiles,
		log:      log,
	}
}

// NewFromStore wires a Service to every repository of s.
func NewFromStore(s *store.Store, profiles *spacedrep.Registry, log zerolog.Logger) *Service {
	return NewService(Repos{
		Decks:   s.DeckRepo(),
		Days:    s.DayRepo(),
		Streaks: s.StreakRepo(),
		Events:  s.EventRepo(),
	}, profiles, log)
}

// CreateDeck stores a new deck and its INITIAL day on today.
func (s *Service) CreateDeck(ctx context.Context, name, profile string, today time.Time) (*store.Deck, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("deck name is required")
	}
	p, err := s.profiles.Lookup(profile)
	if err != nil {
		return nil, err
	}

	if _, err := s.decks.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrDeckExists, name)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	deck := &store.Deck{
		ID:        uuid.NewString(),
		Name:      name,
		Profile:   p.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.decks.Create(ctx, deck); err != nil {
		return nil, err
	}
	initial, err := s.days.Append(ctx, deck.ID, today, chrono.StatusInitial)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("deck", deck.Name).
		Str("profile", deck.Profile).
		Str("start", chrono.FormatDate(initial.Date)).
		Msg("deck created")
	return deck, nil
}

// Deck resolves a deck by id or, failing that, by name.
func (s *Service) Deck(ctx context.Context, ref string) (*store.Deck, error) {
	if _, err := uuid.Parse(ref); err == nil {
		d, err := s.decks.Get(ctx, ref)
		if err == nil || !errors.Is(err, store.ErrNotFound) {
			return d, err
		}
	}
	d, err := s.decks.GetByName(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("deck %q: %w", ref, err)
	}
	return d, nil
}

// Decks lists every deck.
func (s *Service) Decks(ctx context.Context) ([]store.Deck, error) {
	return s.decks.List(ctx)
}

// Profile returns the schedule profile of a deck.
func (s *Service) Profile(deck *store.Deck) (spacedrep.Profile, error) {
	return s.profiles.Lookup(deck.Profile)
}

// Profiles returns the registry used to resolve deck profiles.
func (s *Service) Profiles() *spacedrep.Registry {
	return s.profiles
}

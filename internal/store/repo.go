package store

import (
	"context"
	"time"

	"github.com/abhisek/cadence/internal/chrono"
	"github.com/abhisek/cadence/internal/streak"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Deck is a flashcard set with its own timeline and schedule profile.
type Deck struct {
	ID        string
	Name      string
	Profile   string
	CreatedAt time.Time
}

// DeckRepo manages flashcard decks.
type DeckRepo interface {
	// Create stores a new deck.
	Create(ctx context.Context, deck *Deck) error

	// Get returns the deck with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Deck, error)

	// GetByName returns the deck with the given name, or ErrNotFound.
	GetByName(ctx context.Context, name string) (*Deck, error)

	// List returns all decks ordered by creation time.
	List(ctx context.Context) ([]Deck, error)
}

// DayRepo manages the per-deck attendance timeline.
type DayRepo interface {
	// Append adds a day to a deck's timeline and returns it with its id.
	Append(ctx context.Context, deckID string, date time.Time, status chrono.Status) (chrono.Entry, error)

	// Timeline returns every day of a deck in ascending date order.
	Timeline(ctx context.Context, deckID string) ([]chrono.Entry, error)

	// Latest returns the most recent day of a deck, or ErrNotFound.
	Latest(ctx context.Context, deckID string) (*chrono.Entry, error)

	// ByDate returns the deck's day on date, or ErrNotFound.
	ByDate(ctx context.Context, deckID string, date time.Time) (*chrono.Entry, error)

	// UpdateStatus sets the status of a single day.
	UpdateStatus(ctx context.Context, dayID int64, status chrono.Status) error
}

// StreakRecord is a deck's stored streak together with the fingerprint of
// the timeline it was calculated from.
type StreakRecord struct {
	State       streak.State
	Fingerprint string
}

// StreakRepo persists per-deck streak state.
type StreakRepo interface {
	// Get returns the deck's streak record, or nil if none was saved yet.
	Get(ctx context.Context, deckID string) (*StreakRecord, error)

	// Save creates or replaces the deck's streak record.
	Save(ctx context.Context, deckID string, rec StreakRecord) error
}

// DayEventData captures a single status change of a timeline day.
type DayEventData struct {
	DeckID string
	DayID  int64
	Date   time.Time
	From   chrono.Status
	To     chrono.Status
}

// DayEventRecord is a stored DayEventData with its ordering metadata.
type DayEventRecord struct {
	DayEventData
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to day events.
type EventRepo interface {
	// AppendDayEvent records a status change.
	AppendDayEvent(ctx context.Context, data DayEventData) error

	// QueryDayEvents returns a deck's events, newest first.
	QueryDayEvents(ctx context.Context, deckID string, opts QueryOpts) ([]DayEventRecord, error)
}

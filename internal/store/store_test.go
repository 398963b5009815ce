package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cadence/internal/chrono"
	"github.com/abhisek/cadence/internal/streak"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createDeck(t *testing.T, s *Store, name string) *Deck {
	t.Helper()
	d := &Deck{
		ID:        uuid.NewString(),
		Name:      name,
		Profile:   "Lightspeed",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.DeckRepo().Create(context.Background(), d))
	return d
}

var day0 = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWithPragmas(t *testing.T) {
	assert.True(t, strings.HasPrefix(withPragmas("a.db"), "a.db?_pragma="))
	assert.True(t, strings.HasPrefix(withPragmas("file:x?mode=memory"), "file:x?mode=memory&_pragma="))
}

func TestDeckRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.DeckRepo()

	a := createDeck(t, s, "spanish")
	createDeck(t, s, "kanji")

	got, err := repo.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "spanish", got.Name)
	assert.Equal(t, "Lightspeed", got.Profile)

	got, err = repo.GetByName(ctx, "kanji")
	require.NoError(t, err)
	assert.Equal(t, "kanji", got.Name)

	_, err = repo.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound), "err = %v", err)

	decks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, decks, 2)

	dup := &Deck{ID: uuid.NewString(), Name: "spanish", Profile: "Wyner", CreatedAt: time.Now()}
	assert.Error(t, repo.Create(ctx, dup), "deck names are unique")
}

func TestDayRepo_AppendAndTimeline(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	deck := createDeck(t, s, "spanish")
	repo := s.DayRepo()

	// Appended out of order; Timeline sorts by date.
	_, err := repo.Append(ctx, deck.ID, day0.AddDate(0, 0, 2), chrono.StatusOff)
	require.NoError(t, err)
	first, err := repo.Append(ctx, deck.ID, day0, chrono.StatusInitial)
	require.NoError(t, err)
	_, err = repo.Append(ctx, deck.ID, day0.AddDate(0, 0, 1), chrono.StatusCompleted)
	require.NoError(t, err)

	assert.NotZero(t, first.ID)
	assert.True(t, first.Date.Equal(day0))

	tl, err := repo.Timeline(ctx, deck.ID)
	require.NoError(t, err)
	require.Len(t, tl, 3)
	assert.Equal(t, chrono.StatusInitial, tl[0].Status)
	assert.Equal(t, chrono.StatusCompleted, tl[1].Status)
	assert.Equal(t, chrono.StatusOff, tl[2].Status)
	for i, e := range tl {
		assert.True(t, e.Date.Equal(day0.AddDate(0, 0, i)), "tl[%d].Date = %v", i, e.Date)
	}

	latest, err := repo.Latest(ctx, deck.ID)
	require.NoError(t, err)
	assert.Equal(t, chrono.StatusOff, latest.Status)

	other := createDeck(t, s, "kanji")
	_, err = repo.Latest(ctx, other.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDayRepo_DuplicateDatesAreStored(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	deck := createDeck(t, s, "spanish")
	repo := s.DayRepo()

	_, err := repo.Append(ctx, deck.ID, day0, chrono.StatusInitial)
	require.NoError(t, err)
	_, err = repo.Append(ctx, deck.ID, day0, chrono.StatusNotStarted)
	require.NoError(t, err)

	tl, err := repo.Timeline(ctx, deck.ID)
	require.NoError(t, err)
	assert.Len(t, tl, 2)
}

func TestDayRepo_ByDateAndUpdate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	deck := createDeck(t, s, "spanish")
	repo := s.DayRepo()

	e, err := repo.Append(ctx, deck.ID, day0, chrono.StatusNotStarted)
	require.NoError(t, err)

	got, err := repo.ByDate(ctx, deck.ID, day0.Add(13*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)

	require.NoError(t, repo.UpdateStatus(ctx, e.ID, chrono.StatusCompleted))
	got, err = repo.ByDate(ctx, deck.ID, day0)
	require.NoError(t, err)
	assert.Equal(t, chrono.StatusCompleted, got.Status)

	_, err = repo.ByDate(ctx, deck.ID, day0.AddDate(0, 0, 5))
	assert.True(t, errors.Is(err, ErrNotFound))

	err = repo.UpdateStatus(ctx, 9999, chrono.StatusOff)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStreakRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	deck := createDeck(t, s, "spanish")
	repo := s.StreakRepo()

	st, err := repo.Get(ctx, deck.ID)
	require.NoError(t, err)
	assert.Nil(t, st)

	require.NoError(t, repo.Save(ctx, deck.ID, StreakRecord{State: streak.State{Count: 3, CheckpointID: 7}, Fingerprint: "a"}))
	require.NoError(t, repo.Save(ctx, deck.ID, StreakRecord{State: streak.State{Count: 4, CheckpointID: 9}, Fingerprint: "b"}))

	st, err = repo.Get(ctx, deck.ID)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, StreakRecord{State: streak.State{Count: 4, CheckpointID: 9}, Fingerprint: "b"}, *st)
}

func TestEventRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	deck := createDeck(t, s, "spanish")
	other := createDeck(t, s, "kanji")
	repo := s.EventRepo()

	for i, to := range []chrono.Status{chrono.StatusInProgress, chrono.StatusCompleted} {
		require.NoError(t, repo.AppendDayEvent(ctx, DayEventData{
			DeckID: deck.ID,
			DayID:  int64(10 + i),
			Date:   day0,
			From:   chrono.StatusNotStarted,
			To:     to,
		}))
	}
	require.NoError(t, repo.AppendDayEvent(ctx, DayEventData{
		DeckID: other.ID, DayID: 1, Date: day0, From: chrono.StatusNotStarted, To: chrono.StatusOff,
	}))

	events, err := repo.QueryDayEvents(ctx, deck.ID, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, chrono.StatusCompleted, events[0].To)
	assert.Greater(t, events[0].Sequence, events[1].Sequence)
	assert.True(t, events[0].Date.Equal(day0))

	limited, err := repo.QueryDayEvents(ctx, deck.ID, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	after, err := repo.QueryDayEvents(ctx, deck.ID, QueryOpts{After: events[1].Sequence})
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, events[0].Sequence, after[0].Sequence)
}

func TestSequenceCounter_Monotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var last int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		require.NoError(t, err)
		assert.Greater(t, n, last)
		last = n
	}
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/cadence/internal/chrono"
)

// sequenceCounter hands out the global monotonic sequence number stamped on
// every event. Timestamps can collide within a second and row ids are per
// table, so the sequence is the only total order across decks.
//
// The counter lives in raw SQL outside the migrated schema. The mutex
// serializes within the process; RETURNING makes the increment atomic in
// the database.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo on the day_events table.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendDayEvent(ctx context.Context, data DayEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().
		Insert(dayEventsTable).
		Columns("sequence", "timestamp", "deck_id", "day_id", "date", "from_status", "to_status").
		Values(seqNum, time.Now().UTC(), data.DeckID, data.DayID,
			chrono.FormatDate(chrono.Day(data.Date)), string(data.From), string(data.To)).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save day event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryDayEvents(ctx context.Context, deckID string, opts QueryOpts) ([]DayEventRecord, error) {
	sel := builder().
		Select("sequence", "timestamp", "deck_id", "day_id", "date", "from_status", "to_status").
		From(entsql.Table(dayEventsTable)).
		Where(entsql.EQ("deck_id", deckID)).
		OrderBy(entsql.Desc("sequence"))

	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	if opts.After > 0 {
		sel = sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel = sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel = sel.Where(entsql.GTE("timestamp", opts.From))
	}
	if !opts.To.IsZero() {
		sel = sel.Where(entsql.LTE("timestamp", opts.To))
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query day events: %w", err)
	}
	defer rows.Close()

	var records []DayEventRecord
	for rows.Next() {
		var (
			rec      DayEventRecord
			date     string
			from, to string
		)
		if err := rows.Scan(&rec.Sequence, &rec.Timestamp, &rec.DeckID, &rec.DayID, &date, &from, &to); err != nil {
			return nil, fmt.Errorf("scan day event: %w", err)
		}
		d, err := chrono.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("day event %d: bad date %q: %w", rec.Sequence, date, err)
		}
		rec.Date = d
		rec.From = chrono.Status(from)
		rec.To = chrono.Status(to)
		records = append(records, rec)
	}
	return records, rows.Err()
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/cadence/internal/chrono"
)

// dayRepo implements DayRepo on the chrono_days table.
type dayRepo struct {
	db *sql.DB
}

var dayColumns = []string{"id", "date", "status"}

func (r *dayRepo) Append(ctx context.Context, deckID string, date time.Time, status chrono.Status) (chrono.Entry, error) {
	date = chrono.Day(date)
	query, args := builder().
		Insert(chronoDaysTable).
		Columns("deck_id", "date", "status").
		Values(deckID, chrono.FormatDate(date), string(status)).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return chrono.Entry{}, fmt.Errorf("save day: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return chrono.Entry{}, fmt.Errorf("day id: %w", err)
	}
	return chrono.Entry{ID: id, Date: date, Status: status}, nil
}

func (r *dayRepo) Timeline(ctx context.Context, deckID string) ([]chrono.Entry, error) {
	query, args := builder().
		Select(dayColumns...).
		From(entsql.Table(chronoDaysTable)).
		Where(entsql.EQ("deck_id", deckID)).
		OrderBy("date", "id").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query timeline: %w", err)
	}
	defer rows.Close()

	var timeline []chrono.Entry
	for rows.Next() {
		e, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		timeline = append(timeline, e)
	}
	return timeline, rows.Err()
}

func (r *dayRepo) Latest(ctx context.Context, deckID string) (*chrono.Entry, error) {
	query, args := builder().
		Select(dayColumns...).
		From(entsql.Table(chronoDaysTable)).
		Where(entsql.EQ("deck_id", deckID)).
		OrderBy(entsql.Desc("date"), entsql.Desc("id")).
		Limit(1).
		Query()
	return r.one(ctx, query, args)
}

func (r *dayRepo) ByDate(ctx context.Context, deckID string, date time.Time) (*chrono.Entry, error) {
	query, args := builder().
		Select(dayColumns...).
		From(entsql.Table(chronoDaysTable)).
		Where(entsql.And(
			entsql.EQ("deck_id", deckID),
			entsql.EQ("date", chrono.FormatDate(chrono.Day(date))),
		)).
		OrderBy("id").
		Limit(1).
		Query()
	return r.one(ctx, query, args)
}

func (r *dayRepo) UpdateStatus(ctx context.Context, dayID int64, status chrono.Status) error {
	query, args := builder().
		Update(chronoDaysTable).
		Set("status", string(status)).
		Where(entsql.EQ("id", dayID)).
		Query()

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update day status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update day status: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("day %d: %w", dayID, ErrNotFound)
	}
	return nil
}

func (r *dayRepo) one(ctx context.Context, query string, args []any) (*chrono.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query day: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query day: %w", err)
		}
		return nil, fmt.Errorf("day: %w", ErrNotFound)
	}
	e, err := scanDay(rows)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanDay(rows *sql.Rows) (chrono.Entry, error) {
	var (
		e      chrono.Entry
		date   string
		status string
	)
	if err := rows.Scan(&e.ID, &date, &status); err != nil {
		return chrono.Entry{}, fmt.Errorf("scan day: %w", err)
	}
	d, err := chrono.ParseDate(date)
	if err != nil {
		return chrono.Entry{}, fmt.Errorf("day %d: bad date %q: %w", e.ID, date, err)
	}
	e.Date = d
	e.Status = chrono.Status(status)
	return e, nil
}


package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// streakRepo implements StreakRepo on the day_streaks table.
type streakRepo struct {
	db *sql.DB
}

func (r *streakRepo) Get(ctx context.Context, deckID string) (*StreakRecord, error) {
	query, args := builder().
		Select("count", "checkpoint_id", "fingerprint").
		From(entsql.Table(dayStreaksTable)).
		Where(entsql.EQ("deck_id", deckID)).
		Query()

	var rec StreakRecord
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&rec.State.Count, &rec.State.CheckpointID, &rec.Fingerprint)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query streak: %w", err)
	}
	return &rec, nil
}

func (r *streakRepo) Save(ctx context.Context, deckID string, rec StreakRecord) error {
	query, args := builder().
		Insert(dayStreaksTable).
		Columns("deck_id", "count", "checkpoint_id", "fingerprint", "updated_at").
		Values(deckID, rec.State.Count, rec.State.CheckpointID, rec.Fingerprint, time.Now().UTC()).
		OnConflict(
			entsql.ConflictColumns("deck_id"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save streak: %w", err)
	}
	return nil
}

package planner

import (
	"context"

	"github.com/abhisek/cadence/internal/store"
)

// DefaultHistoryLimit caps History when no limit is given.
const DefaultHistoryLimit = 20

// History returns the deck's most recent status changes, newest first.
func (s *Service) History(ctx context.Context, deckID string, limit int) ([]store.DayEventRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.events.QueryDayEvents(ctx, deckID, store.QueryOpts{Limit: limit})
}

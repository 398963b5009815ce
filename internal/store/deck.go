package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// deckRepo implements DeckRepo on the decks table.
type deckRepo struct {
	db *sql.DB
}

var deckColumns = []string{"id", "name", "profile", "created_at"}

func (r *deckRepo) Create(ctx context.Context, deck *Deck) error {
	query, args := builder().
		Insert(decksTable).
		Columns(deckColumns...).
		Values(deck.ID, deck.Name, deck.Profile, deck.CreatedAt).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save deck: %w", err)
	}
	return nil
}

func (r *deckRepo) Get(ctx context.Context, id string) (*Deck, error) {
	return r.one(ctx, entsql.EQ("id", id))
}

func (r *deckRepo) GetByName(ctx context.Context, name string) (*Deck, error) {
	return r.one(ctx, entsql.EQ("name", name))
}

func (r *deckRepo) List(ctx context.Context) ([]Deck, error) {
	query, args := builder().
		Select(deckColumns...).
		From(entsql.Table(decksTable)).
		OrderBy("created_at", "name").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query decks: %w", err)
	}
	defer rows.Close()

	var decks []Deck
	for rows.Next() {
		var d Deck
		if err := rows.Scan(&d.ID, &d.Name, &d.Profile, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

func (r *deckRepo) one(ctx context.Context, where *entsql.Predicate) (*Deck, error) {
	query, args := builder().
		Select(deckColumns...).
		From(entsql.Table(decksTable)).
		Where(where).
		Limit(1).
		Query()

	var d Deck
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.Name, &d.Profile, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("deck: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query deck: %w", err)
	}
	return &d, nil
}

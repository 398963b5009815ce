package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	decksTable      = "decks"
	chronoDaysTable = "chrono_days"
	dayStreaksTable = "day_streaks"
	dayEventsTable  = "day_events"
)

var (
	// DecksColumns holds the columns for the "decks" table.
	DecksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "profile", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DecksTable holds the schema information for the "decks" table.
	DecksTable = &schema.Table{
		Name:       decksTable,
		Columns:    DecksColumns,
		PrimaryKey: []*schema.Column{DecksColumns[0]},
		Indexes: []*schema.Index{
			{Name: "deck_name", Unique: true, Columns: []*schema.Column{DecksColumns[1]}},
		},
	}

	// ChronoDaysColumns holds the columns for the "chrono_days" table.
	ChronoDaysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "date", Type: field.TypeString, Size: 10},
		{Name: "status", Type: field.TypeString},
		{Name: "deck_id", Type: field.TypeString},
	}
	// ChronoDaysTable holds the schema information for the "chrono_days"
	// table. The (deck_id, date) index is not unique: duplicate
	// dates are reported by the projector as corruption.
	ChronoDaysTable = &schema.Table{
		Name:       chronoDaysTable,
		Columns:    ChronoDaysColumns,
		PrimaryKey: []*schema.Column{ChronoDaysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chrono_days_decks_days",
				Columns:    []*schema.Column{ChronoDaysColumns[3]},
				RefColumns: []*schema.Column{DecksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "chronoday_deck_id_date", Unique: false, Columns: []*schema.Column{ChronoDaysColumns[3], ChronoDaysColumns[1]}},
		},
	}

	// DayStreaksColumns holds the columns for the "day_streaks" table.
	DayStreaksColumns = []*schema.Column{
		{Name: "deck_id", Type: field.TypeString, Unique: true},
		{Name: "count", Type: field.TypeInt},
		{Name: "checkpoint_id", Type: field.TypeInt64},
		{Name: "fingerprint", Type: field.TypeString, Default: ""},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DayStreaksTable holds the schema information for the "day_streaks" table.
	DayStreaksTable = &schema.Table{
		Name:       dayStreaksTable,
		Columns:    DayStreaksColumns,
		PrimaryKey: []*schema.Column{DayStreaksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "day_streaks_decks_streak",
				Columns:    []*schema.Column{DayStreaksColumns[0]},
				RefColumns: []*schema.Column{DecksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}

	// DayEventsColumns holds the columns for the "day_events" table.
	DayEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "deck_id", Type: field.TypeString},
		{Name: "day_id", Type: field.TypeInt64},
		{Name: "date", Type: field.TypeString, Size: 10},
		{Name: "from_status", Type: field.TypeString},
		{Name: "to_status", Type: field.TypeString},
	}
	// DayEventsTable holds the schema information for the "day_events" table.
	DayEventsTable = &schema.Table{
		Name:       dayEventsTable,
		Columns:    DayEventsColumns,
		PrimaryKey: []*schema.Column{DayEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "dayevent_deck_id", Unique: false, Columns: []*schema.Column{DayEventsColumns[3]}},
			{Name: "dayevent_timestamp", Unique: false, Columns: []*schema.Column{DayEventsColumns[2]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DecksTable,
		ChronoDaysTable,
		DayStreaksTable,
		DayEventsTable,
	}
)

func init() {
	ChronoDaysTable.ForeignKeys[0].RefTable = DecksTable
	DayStreaksTable.ForeignKeys[0].RefTable = DecksTable
}

// migrate creates or updates the tables above.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

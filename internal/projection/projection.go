// Package projection merges a synthetic stage schedule with a deck's
// persisted attendance timeline.
//
// Two counters run through the merge. The calendar offset maps every
// projected day to a real date and to the persisted entry at that position.
// The beat advances only on days that are not OFF and selects the due stages,
// so rest days pause the cadence instead of consuming a stage's slot.
package projection

import (
	"time"

	"github.com/abhisek/cadence/internal/chrono"
	"github.com/abhisek/cadence/internal/spacedrep"
)

// DefaultLookahead is the number of future days projected past the timeline.
const DefaultLookahead = 200

// Day is one displayable day of a projection. Beat is nil on OFF days.
type Day struct {
	ID        int64             `json:"id"`
	Date      time.Time         `json:"date"`
	Beat      *int              `json:"beat"`
	Status    chrono.Status     `json:"status"`
	DueStages []spacedrep.Stage `json:"due_stages"`
}

// Persisted reports whether the day exists in the stored timeline.
func (d Day) Persisted() bool {
	return d.ID != 0
}

// Project returns one Day per timeline entry plus lookaheadDays future days.
// The timeline need not be sorted. An empty timeline yields an empty result.
// Two entries with the same date yield a *chrono.DuplicateDateError.
func Project(timeline []chrono.Entry, p spacedrep.Profile, lookaheadDays int) ([]Day, error) {
	if len(timeline) == 0 {
		return []Day{}, nil
	}
	if lookaheadDays < 0 {
		lookaheadDays = 0
	}

	timeline = chrono.Sorted(timeline)
	initial := timeline[0]
	startDate := chrono.Day(initial.Date)

	schedule := spacedrep.Build(p, len(timeline)+lookaheadDays)

	days := make([]Day, 0, len(schedule)+1)
	days = append(days, Day{
		ID:        initial.ID,
		Date:      startDate,
		Beat:      intPtr(0),
		Status:    initial.Status,
		DueStages: []spacedrep.Stage{},
	})

	prev := &initial
	beat := 0
	for offset := 1; offset <= len(schedule); offset++ {
		var entry *chrono.Entry
		if offset < len(timeline) {
			entry = &timeline[offset]
		}

		day := Day{
			Date:   startDate.AddDate(0, 0, offset),
			Status: chrono.StatusNotStarted,
		}
		if entry != nil {
			if chrono.Day(entry.Date).Equal(chrono.Day(prev.Date)) {
				return nil, &chrono.DuplicateDateError{Date: chrono.Day(entry.Date)}
			}
			prev = entry
			day.ID = entry.ID
			day.Status = entry.Status
		}

		if day.Status.Counts() {
			beat++
			day.Beat = intPtr(beat)
			day.DueStages = schedule[beat-1].DueStages
		} else {
			day.DueStages = []spacedrep.Stage{}
		}

		days = append(days, day)
	}
	return days, nil
}

// ProjectFrom projects the timeline and returns the suffix starting at the
// persisted entry fromID. It returns *chrono.BoundaryNotFoundError when the
// entry is not part of the timeline.
func ProjectFrom(timeline []chrono.Entry, p spacedrep.Profile, lookaheadDays int, fromID int64) ([]Day, error) {
	if _, err := chrono.Locate(timeline, fromID); err != nil {
		return nil, err
	}
	days, err := Project(timeline, p, lookaheadDays)
	if err != nil {
		return nil, err
	}
	for i, d := range days {
		if d.ID == fromID {
			return days[i:], nil
		}
	}
	return nil, &chrono.BoundaryNotFoundError{ID: fromID}
}

// Today returns the projected day for date, if the projection covers it.
func Today(days []Day, date time.Time) (Day, bool) {
	date = chrono.Day(date)
	for _, d := range days {
		if d.Date.Equal(date) {
			return d, true
		}
	}
	return Day{}, false
}

func intPtr(v int) *int {
	return &v
}

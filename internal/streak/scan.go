// Package streak tracks consecutive completed study days over a deck's
// attendance timeline.
package streak

import "github.com/abhisek/cadence/internal/chrono"

// Scan walks timeline backward from fromInclusive to the entry just after
// toExclusive and reports how the streak changed. The timeline must be in
// ascending date order and contain both boundaries; a missing boundary is a
// *chrono.BoundaryNotFoundError.
//
// Before the first completed day, in-progress days are skipped and the
// starting day may still be not started; anything else breaks the streak.
// Once counting, rest days are transparent and any other status ends the
// segment without discarding what was counted.
func Scan(fromInclusive, toExclusive chrono.Entry, timeline []chrono.Entry) (Outcome, error) {
	if fromInclusive.Status == chrono.StatusInitial {
		return NoChange{}, nil
	}

	fromIndex, err := chrono.Locate(timeline, fromInclusive.ID)
	if err != nil {
		return nil, err
	}
	toIndex, err := chrono.Locate(timeline, toExclusive.ID)
	if err != nil {
		return nil, err
	}
	toIndex++

	if toIndex >= len(timeline) {
		return NoChange{}, nil
	}
	toInclusive := timeline[toIndex]
	if fromInclusive.Date.Before(toInclusive.Date) {
		return NoChange{}, nil
	}

	var (
		counting      bool
		broken        bool
		count         int
		lastCompleted chrono.Entry
	)

walk:
	for i := fromIndex; i >= toIndex; i-- {
		day := timeline[i]

		if !counting {
			switch {
			case day.Status == chrono.StatusCompleted:
				counting = true
				count = 1
				lastCompleted = day
			case day.Status == chrono.StatusInProgress:
			case day.Status == chrono.StatusNotStarted && day.ID == fromInclusive.ID:
			default:
				broken = true
				break walk
			}
			continue
		}

		switch day.Status {
		case chrono.StatusCompleted:
			count++
			lastCompleted = day
		case chrono.StatusOff:
		default:
			break walk
		}
	}

	switch {
	case broken:
		return Reset{}, nil
	case counting:
		return Progress{Count: count, LastCompleted: lastCompleted}, nil
	default:
		return NoChange{}, nil
	}
}

package chrono

import (
	"fmt"
	"time"
)

// DuplicateDateError reports two timeline entries sharing one date. The
// persisted timeline is corrupted; callers should surface it, not retry.
type DuplicateDateError struct {
	Date time.Time
}

func (e *DuplicateDateError) Error() string {
	return fmt.Sprintf("corrupted timeline: duplicate entries for date %s", FormatDate(e.Date))
}

// BoundaryNotFoundError reports a reference entry missing from a timeline.
type BoundaryNotFoundError struct {
	ID int64
}

func (e *BoundaryNotFoundError) Error() string {
	return fmt.Sprintf("corrupted timeline: entry %d not found", e.ID)
}

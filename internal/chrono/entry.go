package chrono

import (
	"sort"
	"time"
)

// DateLayout is the wire and storage format of a timeline date.
const DateLayout = "2006-01-02"

// Entry is one calendar day in a deck's attendance timeline.
type Entry struct {
	ID     int64     `json:"id"`
	Date   time.Time `json:"date"`
	Status Status    `json:"status"`
}

// Day truncates t to its civil date at UTC midnight, using t's own location
// to decide which date it is.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(v string) (time.Time, error) {
	return time.Parse(DateLayout, v)
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// Sorted returns a copy of timeline ordered by ascending civil date, as
// computed by Day. Entries on the same civil date keep their relative order.
func Sorted(timeline []Entry) []Entry {
	out := append([]Entry(nil), timeline...)
	sort.SliceStable(out, func(i, j int) bool {
		return Day(out[i].Date).Before(Day(out[j].Date))
	})
	return out
}

// Locate returns the index of the entry with the given id.
func Locate(timeline []Entry, id int64) (int, error) {
	for i, e := range timeline {
		if e.ID == id {
			return i, nil
		}
	}
	return -1, &BoundaryNotFoundError{ID: id}
}

package chrono

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the life-cycle state of one day in a deck's timeline.
type Status string

const (
	StatusInitial    Status = "INITIAL"
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusOff        Status = "OFF"
)

// ErrInvalidTransition is returned when a day cannot move to the requested status.
var ErrInvalidTransition = errors.New("invalid status transition")

// AllStatuses returns every status in life-cycle order.
func AllStatuses() []Status {
	return []Status{StatusInitial, StatusNotStarted, StatusInProgress, StatusCompleted, StatusOff}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusInitial, StatusNotStarted, StatusInProgress, StatusCompleted, StatusOff:
		return true
	}
	return false
}

// Counts reports whether the day advances the repetition beat.
func (s Status) Counts() bool {
	return s != StatusOff
}

// DisplayName returns a human-readable label for the status.
func (s Status) DisplayName() string {
	switch s {
	case StatusInitial:
		return "Start"
	case StatusNotStarted:
		return "Not started"
	case StatusInProgress:
		return "In progress"
	case StatusCompleted:
		return "Completed"
	case StatusOff:
		return "Day off"
	default:
		return string(s)
	}
}

// ParseStatus accepts the canonical names case-insensitively, with '-' or '_'.
func ParseStatus(v string) (Status, error) {
	s := Status(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(v)), "-", "_"))
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", v)
	}
	return s, nil
}

var transitions = map[Status][]Status{
	StatusNotStarted: {StatusInProgress, StatusCompleted, StatusOff},
	StatusInProgress: {StatusCompleted, StatusNotStarted},
	StatusCompleted:  {StatusInProgress},
	StatusOff:        {StatusNotStarted},
}

// CanTransition reports whether a day may move from one status to another.
// INITIAL days are immutable and no day can become INITIAL.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition returns ErrInvalidTransition, wrapped with both statuses,
// when CanTransition is false.
func CheckTransition(from, to Status) error {
	if CanTransition(from, to) {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

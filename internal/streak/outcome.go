package streak

import (
	"fmt"

	"github.com/abhisek/cadence/internal/chrono"
)

// Outcome is the result of a streak scan. It is one of Progress, Reset or
// NoChange.
type Outcome interface {
	outcome()
}

// Progress reports Count newly completed days. LastCompleted is the oldest
// completed day reached by the backward walk.
type Progress struct {
	Count         int
	LastCompleted chrono.Entry
}

// Reset reports that the scanned range breaks the streak.
type Reset struct{}

// NoChange reports that the scanned range neither extends nor breaks the streak.
type NoChange struct{}

func (Progress) outcome() {}
func (Reset) outcome()    {}
func (NoChange) outcome() {}

// Describe returns a short label for an outcome.
func Describe(o Outcome) string {
	switch o := o.(type) {
	case Progress:
		return "progress"
	case Reset:
		return "reset"
	case NoChange:
		return "no change"
	default:
		panic(fmt.Sprintf("streak: unknown outcome %T", o))
	}
}

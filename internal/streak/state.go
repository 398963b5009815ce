package streak

import (
	"fmt"

	"github.com/abhisek/cadence/internal/chrono"
)

// State is a deck's persisted streak: the running count and the timeline
// entry the next scan stops at.
type State struct {
	Count        int   `json:"count"`
	CheckpointID int64 `json:"checkpoint_id"`
}

// CalcDayStreak scans the timeline from its latest entry back to the
// state's checkpoint and applies the outcome to state. A zero checkpoint is
// initialized to the earliest entry. Timelines with fewer than two entries
// never change the state.
//
// On Reset the count drops to zero but the checkpoint stays where it was,
// so the next call rescans the same range.
func CalcDayStreak(state *State, timeline []chrono.Entry) (Outcome, error) {
	if len(timeline) < 2 {
		return NoChange{}, nil
	}

	timeline = chrono.Sorted(timeline)
	if state.CheckpointID == 0 {
		state.CheckpointID = timeline[0].ID
	}

	checkpointIndex, err := chrono.Locate(timeline, state.CheckpointID)
	if err != nil {
		return nil, err
	}

	latest := timeline[len(timeline)-1]
	outcome, err := Scan(latest, timeline[checkpointIndex], timeline)
	if err != nil {
		return nil, err
	}

	switch o := outcome.(type) {
	case Progress:
		state.Count += o.Count
		state.CheckpointID = o.LastCompleted.ID
	case Reset:
		state.Count = 0
	case NoChange:
	default:
		panic(fmt.Sprintf("streak: unknown outcome %T", o))
	}
	return outcome, nil
}

package spacedrep

// stageCursor tracks the next due day of a single stage.
type stageCursor struct {
	clock   StageClock
	nextDue int
}

// Resolver reports which stages are due on each day of a schedule.
//
// A Resolver is a sequential cursor: StagesDueOn must be called with
// strictly increasing days starting at 1, once per day, without gaps.
// A stage whose due day is never queried does not fire later. Each deck
// needs its own Resolver; it is not safe for concurrent use.
type Resolver struct {
	cursors [StageCount]stageCursor
}

// NewResolver seeds one cursor per stage of the profile.
func NewResolver(p Profile) *Resolver {
	r := &Resolver{}
	for i, rec := range p.Stages {
		clock := NewStageClock(rec)
		first := clock.Next()
		r.cursors[i] = stageCursor{clock: clock, nextDue: first}
	}
	return r
}

// StagesDueOn returns the stages due on day, most mature first.
func (r *Resolver) StagesDueOn(day int) []Stage {
	var due []Stage
	for i := StageCount - 1; i >= 0; i-- {
		c := &r.cursors[i]
		if c.nextDue != day {
			continue
		}
		due = append(due, Stage(i+1))
		c.nextDue += c.clock.Next()
	}
	return due
}

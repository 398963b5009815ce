package spacedrep

// Gap is the spacing between consecutive due days of one stage. A gap with
// a single value is fixed; a gap with several values cycles through them.
type Gap struct {
	values []int
}

// FixedGap returns a gap that always yields v.
func FixedGap(v int) Gap {
	return Gap{values: []int{v}}
}

// CyclicGap returns a gap that yields values in order and wraps around.
// It panics if values is empty.
func CyclicGap(values ...int) Gap {
	if len(values) == 0 {
		panic("spacedrep: cyclic gap needs at least one value")
	}
	return Gap{values: append([]int(nil), values...)}
}

// Values returns a copy of the gap's values.
func (g Gap) Values() []int {
	return append([]int(nil), g.values...)
}

// Cyclic reports whether the gap alternates between several lengths.
func (g Gap) Cyclic() bool {
	return len(g.values) > 1
}

// Recurrence describes when one stage first comes due and how it repeats.
// Delay shifts only the first occurrence and may be negative.
type Recurrence struct {
	Delay int
	Gap   Gap
}

// StageClock is the recurrence cursor for one stage.
//
// The zero value is not usable; create clocks with NewStageClock.
type StageClock struct {
	rec     Recurrence
	cursor  int
	started bool
}

// NewStageClock returns a clock positioned before the first occurrence.
func NewStageClock(rec Recurrence) StageClock {
	return StageClock{rec: rec}
}

// Next returns the offset to the next due day. The first call includes the
// recurrence delay; later calls return the bare gap.
func (c *StageClock) Next() int {
	values := c.rec.Gap.values
	v := values[c.cursor]
	c.cursor = (c.cursor + 1) % len(values)

	if !c.started {
		c.started = true
		return v + c.rec.Delay
	}
	return v
}

package streak

// BaseMilestone is the first streak length worth celebrating.
const BaseMilestone = 5

// NextMilestone returns the next streak milestone above the current count.
func NextMilestone(current int) int {
	milestones := []int{5, 10, 15, 20}
	for _, m := range milestones {
		if m > current {
			return m
		}
	}
	// Beyond 20, every 5.
	return ((current / 5) + 1) * 5
}

// Crossed reports whether moving from before to after reached a milestone.
func Crossed(before, after int) bool {
	return after >= NextMilestone(before)
}

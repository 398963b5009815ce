package spacedrep

// DefaultHorizon is the synthetic schedule length shown for a deck that has
// no timeline yet.
const DefaultHorizon = 200

// ScheduleDay is one day of a synthetic schedule.
type ScheduleDay struct {
	Number    int     `json:"number"`
	DueStages []Stage `json:"due_stages"`
}

// IsDue reports whether stage s is due on the day.
func (d ScheduleDay) IsDue(s Stage) bool {
	for _, due := range d.DueStages {
		if due == s {
			return true
		}
	}
	return false
}

// Build drives a fresh Resolver across days 1..horizonDays and returns the
// resulting schedule. It is pure; rebuilding yields identical results.
func Build(p Profile, horizonDays int) []ScheduleDay {
	if horizonDays <= 0 {
		return []ScheduleDay{}
	}

	r := NewResolver(p)
	days := make([]ScheduleDay, 0, horizonDays)
	for day := 1; day <= horizonDays; day++ {
		due := r.StagesDueOn(day)
		if due == nil {
			due = []Stage{}
		}
		days = append(days, ScheduleDay{Number: day, DueStages: due})
	}
	return days
}

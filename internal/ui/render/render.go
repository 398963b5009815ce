// Package render formats schedules, projections, streaks and histories for
// the terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cadence/internal/chrono"
	"github.com/abhisek/cadence/internal/projection"
	"github.com/abhisek/cadence/internal/spacedrep"
	"github.com/abhisek/cadence/internal/store"
	"github.com/abhisek/cadence/internal/streak"
	"github.com/abhisek/cadence/internal/ui/theme"
)

var headerStyle = theme.Header

const (
	dueMark  = "●"
	idleMark = "·"
)

// Renderer writes formatted output. Plain output carries no ANSI styling.
type Renderer struct {
	Plain bool
}

func (r Renderer) apply(style lipgloss.Style, text string) string {
	if r.Plain {
		return text
	}
	return style.Render(text)
}

// Schedule writes one row per schedule day with a mark under each due stage.
func (r Renderer) Schedule(w io.Writer, profile string, days []spacedrep.ScheduleDay) error {
	t := &table{headers: []string{"Day"}}
	for _, s := range spacedrep.AllStages() {
		t.headers = append(t.headers, s.String())
	}
	for _, d := range days {
		row := []cell{{text: strconv.Itoa(d.Number)}}
		for _, s := range spacedrep.AllStages() {
			if d.IsDue(s) {
				row = append(row, r.cell(dueMark, theme.Highlight))
			} else {
				row = append(row, r.cell(idleMark, theme.NotStarted))
			}
		}
		t.add(row...)
	}

	_, err := fmt.Fprintf(w, "%s\n%s", r.apply(theme.Title, "Profile "+profile), r.table(t))
	return err
}

// Projection writes the merged timeline. The row for today is highlighted.
func (r Renderer) Projection(w io.Writer, deck string, days []projection.Day, today time.Time) error {
	t := &table{headers: []string{"Date", "Beat", "Status", "Due"}}
	today = chrono.Day(today)

	for _, d := range days {
		beat := "-"
		if d.Beat != nil {
			beat = strconv.Itoa(*d.Beat)
		}
		date := chrono.FormatDate(d.Date)
		dateCell := cell{text: date}
		if d.Date.Equal(today) {
			date += " *"
			dateCell = r.cell(date, theme.Highlight)
		}
		t.add(
			dateCell,
			cell{text: beat},
			r.cell(d.Status.DisplayName(), theme.ForStatus(d.Status)),
			cell{text: stageList(d.DueStages)},
		)
	}

	_, err := fmt.Fprintf(w, "%s\n%s", r.apply(theme.Title, "Deck "+deck), r.table(t))
	return err
}

// Streak writes the current count and progress toward the next milestone.
func (r Renderer) Streak(w io.Writer, deck string, st streak.State, width int) error {
	next := streak.NextMilestone(st.Count)
	prev := next - streak.BaseMilestone
	if prev < 0 {
		prev = 0
	}
	percent := float64(st.Count-prev) / float64(next-prev)

	var b strings.Builder
	b.WriteString(r.apply(theme.Title, "Deck "+deck))
	b.WriteString("\n")
	b.WriteString(r.apply(theme.Highlight, fmt.Sprintf("%d day streak", st.Count)))
	b.WriteString("\n")
	b.WriteString(r.progressBar(fmt.Sprintf("next %d", next), percent, width))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// progressBar draws a horizontal bar. Plain bars use '#' and '-'.
func (r Renderer) progressBar(label string, percent float64, width int) string {
	result := label + "  "

	barWidth := width - lipgloss.Width(result) - 6 // "  100%"
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	if r.Plain {
		result += strings.Repeat("#", filled) + strings.Repeat("-", empty)
	} else {
		result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
			theme.ProgressEmpty.Render(strings.Repeat(" ", empty))
	}
	return result + r.apply(theme.Hint, fmt.Sprintf("  %d%%", int(percent*100)))
}

// History writes day events, newest first.
func (r Renderer) History(w io.Writer, events []store.DayEventRecord) error {
	if len(events) == 0 {
		_, err := fmt.Fprintln(w, r.apply(theme.Hint, "No changes recorded."))
		return err
	}
	t := &table{headers: []string{"#", "When", "Day", "From", "To"}}
	for _, e := range events {
		t.add(
			cell{text: strconv.FormatInt(e.Sequence, 10)},
			cell{text: e.Timestamp.Local().Format("2006-01-02 15:04")},
			cell{text: chrono.FormatDate(e.Date)},
			r.cell(e.From.DisplayName(), theme.ForStatus(e.From)),
			r.cell(e.To.DisplayName(), theme.ForStatus(e.To)),
		)
	}
	_, err := io.WriteString(w, r.table(t))
	return err
}

// Decks writes the deck list.
func (r Renderer) Decks(w io.Writer, decks []store.Deck) error {
	if len(decks) == 0 {
		_, err := fmt.Fprintln(w, r.apply(theme.Hint, "No decks yet. Create one with: cadence deck create NAME"))
		return err
	}
	t := &table{headers: []string{"Name", "Profile", "Created", "ID"}}
	for _, d := range decks {
		t.add(
			r.cell(d.Name, theme.Body),
			cell{text: d.Profile},
			cell{text: d.CreatedAt.Local().Format("2006-01-02")},
			r.cell(d.ID, theme.Hint),
		)
	}
	_, err := io.WriteString(w, r.table(t))
	return err
}

// Profile writes a profile's per-stage recurrences.
func (r Renderer) Profile(w io.Writer, p spacedrep.Profile) error {
	t := &table{headers: []string{"Stage", "Delay", "Gap"}}
	for _, s := range spacedrep.AllStages() {
		rec := p.Recurrence(s)
		gap := intList(rec.Gap.Values())
		if rec.Gap.Cyclic() {
			gap += " (cycle)"
		}
		t.add(
			r.cell(s.String(), theme.Body),
			cell{text: strconv.Itoa(rec.Delay)},
			cell{text: gap},
		)
	}
	_, err := fmt.Fprintf(w, "%s\n%s", r.apply(theme.Title, "Profile "+p.Name), r.table(t))
	return err
}

func stageList(stages []spacedrep.Stage) string {
	if len(stages) == 0 {
		return "-"
	}
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.String()
	}
	return strings.Join(names, " ")
}

func intList(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

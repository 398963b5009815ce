package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cadence/internal/chrono"
)

// Color palette
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Highlight = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

// Day statuses
var (
	Initial = lipgloss.NewStyle().
		Foreground(Primary)

	NotStarted = lipgloss.NewStyle().
			Foreground(TextDim)

	InProgress = lipgloss.NewStyle().
			Foreground(Accent)

	Completed = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Off = lipgloss.NewStyle().
		Foreground(Border).
		Italic(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// ForStatus returns the style used to show a day with status s.
func ForStatus(s chrono.Status) lipgloss.Style {
	switch s {
	case chrono.StatusInitial:
		return Initial
	case chrono.StatusInProgress:
		return InProgress
	case chrono.StatusCompleted:
		return Completed
	case chrono.StatusOff:
		return Off
	default:
		return NotStarted
	}
}

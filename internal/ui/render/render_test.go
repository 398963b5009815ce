package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cadence/internal/chrono"
	"github.com/abhisek/cadence/internal/projection"
	"github.com/abhisek/cadence/internal/spacedrep"
	"github.com/abhisek/cadence/internal/store"
	"github.com/abhisek/cadence/internal/streak"
)

var plain = Renderer{Plain: true}

func TestSchedule(t *testing.T) {
	var buf bytes.Buffer
	days := spacedrep.Build(spacedrep.Lightspeed, 3)
	require.NoError(t, plain.Schedule(&buf, "Lightspeed", days))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Profile Lightspeed", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Day"))
	assert.Contains(t, lines[1], "S7")
	assert.True(t, strings.HasPrefix(lines[2], "1"))
	assert.Equal(t, 1, strings.Count(lines[2], dueMark))
	assert.Equal(t, 6, strings.Count(lines[2], idleMark))
}

func TestProjection(t *testing.T) {
	d0 := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	beat := 1
	days := []projection.Day{
		{ID: 1, Date: d0, Beat: new(int), Status: chrono.StatusInitial, DueStages: []spacedrep.Stage{}},
		{ID: 2, Date: d0.AddDate(0, 0, 1), Beat: &beat, Status: chrono.StatusCompleted, DueStages: []spacedrep.Stage{spacedrep.S1}},
		{Date: d0.AddDate(0, 0, 2), Status: chrono.StatusOff, DueStages: []spacedrep.Stage{}},
	}

	var buf bytes.Buffer
	require.NoError(t, plain.Projection(&buf, "kanji", days, d0.AddDate(0, 0, 1)))
	out := buf.String()

	assert.Contains(t, out, "Deck kanji")
	assert.Contains(t, out, "2025-04-02 *")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "Day off")
	assert.NotContains(t, out, "\x1b[")
}

func TestStreak(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, plain.Streak(&buf, "kanji", streak.State{Count: 7}, 30))
	out := buf.String()

	assert.Contains(t, out, "7 day streak")
	assert.Contains(t, out, "next 10")
	assert.Contains(t, out, "40%")
	assert.Contains(t, out, "#")
}

func TestProgressBarClamps(t *testing.T) {
	bar := plain.progressBar("x", 2, 20)
	assert.NotContains(t, bar, "-")

	bar = plain.progressBar("x", -1, 20)
	assert.NotContains(t, bar, "#")
}

func TestHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, plain.History(&buf, nil))
	assert.Contains(t, buf.String(), "No changes")

	buf.Reset()
	events := []store.DayEventRecord{{
		DayEventData: store.DayEventData{
			Date: time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
			From: chrono.StatusNotStarted,
			To:   chrono.StatusCompleted,
		},
		Sequence:  3,
		Timestamp: time.Now(),
	}}
	require.NoError(t, plain.History(&buf, events))
	assert.Contains(t, buf.String(), "2025-04-02")
	assert.Contains(t, buf.String(), "Not started")
}

func TestDecksAndProfile(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, plain.Decks(&buf, nil))
	assert.Contains(t, buf.String(), "No decks yet")

	buf.Reset()
	require.NoError(t, plain.Decks(&buf, []store.Deck{{ID: "abc", Name: "kanji", Profile: "Wyner", CreatedAt: time.Now()}}))
	assert.Contains(t, buf.String(), "kanji")
	assert.Contains(t, buf.String(), "Wyner")

	buf.Reset()
	require.NoError(t, plain.Profile(&buf, spacedrep.Lightspeed))
	assert.Contains(t, buf.String(), "Profile Lightspeed")
	assert.Contains(t, buf.String(), "S7")
}

func TestColoredOutputKeepsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Renderer{}.Decks(&buf, []store.Deck{{ID: "abc", Name: "kanji", Profile: "Wyner"}}))
	assert.Contains(t, buf.String(), "kanji")
}

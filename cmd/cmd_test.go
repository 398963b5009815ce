package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cadence/internal/chrono"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func testEnv(t *testing.T) string {
	t.Helper()
	t.Setenv("CADENCE_TZ", "UTC")
	t.Setenv("CADENCE_LOG_LEVEL", "error")
	return filepath.Join(t.TempDir(), "cadence.db")
}

func TestVersion(t *testing.T) {
	testEnv(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cadence (devel)\n", out)
}

func TestScheduleCommand(t *testing.T) {
	testEnv(t)
	out, err := execute(t, "schedule", "--plain", "--profile", "wyner", "--days", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Profile Wyner", lines[0])

	_, err = execute(t, "schedule", "--plain", "--profile", "nope", "--days", "3")
	assert.Error(t, err)
}

func TestProfileCommands(t *testing.T) {
	testEnv(t)
	out, err := execute(t, "profile", "list")
	require.NoError(t, err)
	assert.Equal(t, "Lightspeed\nWyner\n", out)

	out, err = execute(t, "profile", "show", "--plain", "lightspeed")
	require.NoError(t, err)
	assert.Contains(t, out, "Profile Lightspeed")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: broken\n"), 0o644))
	_, err = execute(t, "profile", "validate", path)
	assert.Error(t, err)
}

func TestDeckWorkflow(t *testing.T) {
	db := testEnv(t)

	out, err := execute(t, "deck", "create", "kanji", "--db", db, "--profile", "wyner")
	require.NoError(t, err)
	assert.Contains(t, out, `Created deck "kanji" with profile Wyner.`)

	out, err = execute(t, "deck", "list", "--db", db, "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "kanji")

	out, err = execute(t, "plan", "kanji", "--db", db, "--plain", "--lookahead", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Deck kanji")
	assert.Contains(t, out, chrono.FormatDate(today())+" *")
	assert.Contains(t, out, "Start")

	out, err = execute(t, "streak", "kanji", "--db", db, "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "0 day streak")
	again, err := execute(t, "streak", "kanji", "--db", db, "--plain")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	out, err = execute(t, "history", "kanji", "--db", db, "--plain", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "No changes recorded.")

	// The start day cannot change.
	_, err = execute(t, "day", "off", "kanji", "today", "--db", db)
	assert.ErrorIs(t, err, chrono.ErrInvalidTransition)

	_, err = execute(t, "day", "set", "kanji", "2999-01-01", "completed", "--db", db)
	assert.Error(t, err)

	_, err = execute(t, "day", "set", "kanji", "today", "bogus", "--db", db)
	assert.Error(t, err)

	_, err = execute(t, "plan", "missing", "--db", db, "--lookahead", "3")
	assert.Error(t, err)
}

func TestParseDay(t *testing.T) {
	testEnv(t)
	_, err := execute(t, "version")
	require.NoError(t, err)

	d, err := parseDay("today")
	require.NoError(t, err)
	assert.Equal(t, today(), d)

	d, err = parseDay("yesterday")
	require.NoError(t, err)
	assert.Equal(t, today().AddDate(0, 0, -1), d)

	d, err = parseDay("2025-04-02")
	require.NoError(t, err)
	assert.Equal(t, "2025-04-02", chrono.FormatDate(d))

	_, err = parseDay("04/02/2025")
	assert.Error(t, err)
}

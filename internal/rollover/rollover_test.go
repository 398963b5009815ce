package rollover

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoller struct {
	mu    sync.Mutex
	calls []time.Time
	err   error
}

func (f *fakeRoller) RolloverAll(_ context.Context, today time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, today)
	return 1, f.err
}

func (f *fakeRoller) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestNew_RejectsBadSchedule(t *testing.T) {
	_, err := New(&fakeRoller{}, "every tuesday", time.UTC, zerolog.Nop())
	assert.Error(t, err)

	for _, spec := range []string{"@daily", "@midnight", "5 0 * * *", " @hourly "} {
		_, err := New(&fakeRoller{}, spec, time.UTC, zerolog.Nop())
		assert.NoError(t, err, spec)
	}
}

func TestRunOnce_UsesCivilDateInLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	r := &fakeRoller{}
	d, err := New(r, "@daily", tokyo, zerolog.Nop())
	require.NoError(t, err)

	// 20:00 UTC on April 1 is already April 2 in Tokyo.
	d.now = func() time.Time { return time.Date(2025, 4, 1, 20, 0, 0, 0, time.UTC) }

	require.NoError(t, d.RunOnce(context.Background()))
	require.Len(t, r.calls, 1)
	want := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, r.calls[0])
	assert.Equal(t, want, d.LastRun())
}

func TestRunOnce_PropagatesError(t *testing.T) {
	r := &fakeRoller{err: errors.New("db locked")}
	d, err := New(r, "@daily", time.UTC, zerolog.Nop())
	require.NoError(t, err)
	assert.EqualError(t, d.RunOnce(context.Background()), "db locked")
}

func TestRun_CatchesUpAndStops(t *testing.T) {
	r := &fakeRoller{}
	d, err := New(r, "@yearly", time.UTC, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	require.Eventually(t, func() bool { return r.count() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("daemon did not stop")
	}
	assert.Equal(t, 1, r.count())
}

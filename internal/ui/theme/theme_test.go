package theme

import (
	"testing"

	"github.com/abhisek/cadence/internal/chrono"
)

func TestForStatus(t *testing.T) {
	tests := []struct {
		status chrono.Status
		want   string
	}{
		{chrono.StatusCompleted, "done"},
		{chrono.StatusOff, "rest"},
		{chrono.Status("BOGUS"), "x"},
	}
	for _, tt := range tests {
		got := ForStatus(tt.status).Render(tt.want)
		if len(got) < len(tt.want) {
			t.Errorf("ForStatus(%s).Render(%q) = %q, lost text", tt.status, tt.want, got)
		}
	}
}

package streak

import "testing"

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 5},
		{1, 5},
		{4, 5},
		{5, 10},
		{9, 10},
		{10, 15},
		{14, 15},
		{15, 20},
		{19, 20},
		{20, 25},
		{24, 25},
		{25, 30},
	}

	for _, tt := range tests {
		got := NextMilestone(tt.current)
		if got != tt.want {
			t.Errorf("NextMilestone(%d) = %d, want %d", tt.current, got, tt.want)
		}
	}
}

func TestCrossed(t *testing.T) {
	if !Crossed(4, 5) {
		t.Error("4 -> 5 should cross a milestone")
	}
	if Crossed(5, 9) {
		t.Error("5 -> 9 should not cross a milestone")
	}
	if !Crossed(18, 26) {
		t.Error("18 -> 26 should cross a milestone")
	}
}

package spacedrep

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuiltinProfileTables(t *testing.T) {
	tests := []struct {
		profile Profile
		delays  [StageCount]int
		gaps    [StageCount][]int
	}{
		{
			profile: Lightspeed,
			delays:  [StageCount]int{0, 1, 2, 4, 0, 8, -8},
			gaps:    [StageCount][]int{{1}, {2}, {4}, {8}, {16}, {32}, {64}},
		},
		{
			profile: Wyner,
			delays:  [StageCount]int{0, -1, -2, -3, -4, -5, -8},
			gaps:    [StageCount][]int{{1}, {2}, {4}, {7, 9}, {16}, {29, 35}, {64}},
		},
	}

	for _, tt := range tests {
		for _, s := range AllStages() {
			rec := tt.profile.Recurrence(s)
			if rec.Delay != tt.delays[s.Index()] {
				t.Errorf("%s %s: delay = %d, want %d", tt.profile.Name, s, rec.Delay, tt.delays[s.Index()])
			}
			if got := rec.Gap.Values(); !reflect.DeepEqual(got, tt.gaps[s.Index()]) {
				t.Errorf("%s %s: gap = %v, want %v", tt.profile.Name, s, got, tt.gaps[s.Index()])
			}
		}
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"lightspeed", "Lightspeed", " WYNER "} {
		if _, err := r.Lookup(name); err != nil {
			t.Errorf("Lookup(%q): %v", name, err)
		}
	}
	_, err := r.Lookup("leitner")
	if !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("Lookup(leitner) err = %v, want ErrUnknownProfile", err)
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	custom := Lightspeed
	custom.Name = "Sprint"
	if err := r.Register(custom); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"Lightspeed", "Sprint", "Wyner"}) {
		t.Errorf("Names() = %v", got)
	}

	shadow := Wyner
	shadow.Name = "wyner"
	if err := r.Register(shadow); err == nil {
		t.Error("expected error replacing a built-in profile")
	}
	if err := r.Register(Profile{}); err == nil {
		t.Error("expected error for unnamed profile")
	}
}

func TestRegistry_RejectsInvalidGaps(t *testing.T) {
	r := NewRegistry()

	missing := Lightspeed
	missing.Name = "missing-gap"
	missing.Stages[S5.Index()] = Recurrence{Delay: 3}

	zero := Lightspeed
	zero.Name = "zero-gap"
	zero.Stages[S2.Index()] = Recurrence{Gap: CyclicGap(3, 0)}

	for _, p := range []Profile{missing, zero} {
		if err := r.Register(p); err == nil {
			t.Errorf("Register(%s): expected error", p.Name)
		}
		if _, err := r.Lookup(p.Name); !errors.Is(err, ErrUnknownProfile) {
			t.Errorf("Lookup(%s) = %v, want ErrUnknownProfile", p.Name, err)
		}
	}

	if err := Lightspeed.Validate(); err != nil {
		t.Errorf("Lightspeed.Validate() = %v", err)
	}
	if err := Wyner.Validate(); err != nil {
		t.Errorf("Wyner.Validate() = %v", err)
	}
}

func TestParseStage(t *testing.T) {
	tests := []struct {
		in      string
		want    Stage
		wantErr bool
	}{
		{"S1", S1, false},
		{"s4", S4, false},
		{"7", S7, false},
		{"S8", 0, true},
		{"x", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseStage(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStage(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStage(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if S3.String() != "S3" {
		t.Errorf("S3.String() = %q", S3.String())
	}
}

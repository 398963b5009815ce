package spacedrep

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownProfile is returned when a profile name is not registered.
var ErrUnknownProfile = errors.New("unknown schedule profile")

// Profile is a named table of per-stage recurrences. Profiles are data;
// the review cadence of existing decks depends on the exact numbers.
type Profile struct {
	Name   string
	Stages [StageCount]Recurrence
}

// Recurrence returns the recurrence configured for stage s.
func (p Profile) Recurrence(s Stage) Recurrence {
	return p.Stages[s.Index()]
}

// Validate reports a stage whose gap is empty or not positive. Such a
// profile would stall or crash a Resolver.
func (p Profile) Validate() error {
	for _, s := range AllStages() {
		values := p.Stages[s.Index()].Gap.values
		if len(values) == 0 {
			return fmt.Errorf("profile %q: stage %s has no gap", p.Name, s)
		}
		for _, v := range values {
			if v < 1 {
				return fmt.Errorf("profile %q: stage %s gap %d must be at least 1", p.Name, s, v)
			}
		}
	}
	return nil
}

// Lightspeed is the default profile: doubling gaps with staggered delays.
var Lightspeed = Profile{
	Name: "Lightspeed",
	Stages: [StageCount]Recurrence{
		{Delay: 0, Gap: FixedGap(1)},
		{Delay: 1, Gap: FixedGap(2)},
		{Delay: 2, Gap: FixedGap(4)},
		{Delay: 4, Gap: FixedGap(8)},
		{Delay: 0, Gap: FixedGap(16)},
		{Delay: 8, Gap: FixedGap(32)},
		{Delay: -8, Gap: FixedGap(64)},
	},
}

// Wyner pulls every stage earlier and alternates the long S4 and S6 gaps.
var Wyner = Profile{
	Name: "Wyner",
	Stages: [StageCount]Recurrence{
		{Delay: 0, Gap: FixedGap(1)},
		{Delay: -1, Gap: FixedGap(2)},
		{Delay: -2, Gap: FixedGap(4)},
		{Delay: -3, Gap: CyclicGap(7, 9)},
		{Delay: -4, Gap: FixedGap(16)},
		{Delay: -5, Gap: CyclicGap(29, 35)},
		{Delay: -8, Gap: FixedGap(64)},
	},
}

// Registry resolves profiles by case-insensitive name.
type Registry struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

// NewRegistry returns a registry holding the built-in profiles.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[string]Profile)}
	r.profiles[key(Lightspeed.Name)] = Lightspeed
	r.profiles[key(Wyner.Name)] = Wyner
	return r
}

// Register adds or replaces a profile. Built-in profiles cannot be replaced.
func (r *Registry) Register(p Profile) error {
	k := key(p.Name)
	if k == "" {
		return errors.New("profile name is required")
	}
	if k == key(Lightspeed.Name) || k == key(Wyner.Name) {
		return fmt.Errorf("profile %q: cannot replace a built-in profile", p.Name)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[k] = p
	return nil
}

// Lookup returns the profile registered under name.
func (r *Registry) Lookup(name string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[key(name)]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
	}
	return p, nil
}

// Names returns the registered profile names sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.profiles))
	for _, p := range r.profiles {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

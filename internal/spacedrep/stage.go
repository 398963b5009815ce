package spacedrep

import (
	"fmt"
	"strconv"
	"strings"
)

// Stage is a flashcard repetition stage. Higher stages are more mature.
type Stage int

const (
	S1 Stage = iota + 1
	S2
	S3
	S4
	S5
	S6
	S7
)

// StageCount is the number of stages every profile defines.
const StageCount = 7

// AllStages returns every stage in ascending order.
func AllStages() []Stage {
	return []Stage{S1, S2, S3, S4, S5, S6, S7}
}

// Valid reports whether s is one of S1..S7.
func (s Stage) Valid() bool {
	return s >= S1 && s <= S7
}

// Index returns the zero-based position of s in a profile's stage table.
func (s Stage) Index() int {
	return int(s) - 1
}

func (s Stage) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return "S" + strconv.Itoa(int(s))
}

// ParseStage accepts "S3", "s3" or "3".
func ParseStage(v string) (Stage, error) {
	v = strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(v)), "S")
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse stage %q: %w", v, err)
	}
	s := Stage(n)
	if !s.Valid() {
		return 0, fmt.Errorf("stage %d out of range 1..%d", n, StageCount)
	}
	return s, nil
}

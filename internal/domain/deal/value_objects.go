package deal

import (
	"errors"
	"math"
)

var ErrInvalidMinParticipants = errors.New("min participants must be positive")

// DefaultNearThresholdWindow is the largest remaining-slot count that still counts as near threshold.
const DefaultNearThresholdWindow = 3

type MinParticipants struct {
	value int
}

func NewMinParticipants(v int) (MinParticipants, error) {
	if v <= 0 {
		return MinParticipants{}, ErrInvalidMinParticipants
	}
	return MinParticipants{value: v}, nil
}

func (m MinParticipants) Value() int { return m.value }

// Progress is min(100, round(100*count/min)). Zero or negative counts give 0.
func (m MinParticipants) Progress(count int) int {
	if m.value <= 0 || count <= 0 {
		return 0
	}
	p := int(math.Round(float64(count) * 100 / float64(m.value)))
	return min(p, 100)
}

func (m MinParticipants) Remaining(count int) int {
	return max(m.value-count, 0)
}

func (m MinParticipants) Reached(count int) bool {
	return count >= m.value
}

// NearThreshold reports 1 <= remaining <= window.
func (m MinParticipants) NearThreshold(count, window int) bool {
	remaining := m.value - count
	return remaining >= 1 && remaining <= window
}

package engine

import (
	"math/rand"
)

// stubRand replays scripted values so tests can pin exact output.
type stubRand struct {
	ints     []int
	floats   []float64
	intIdx   int
	floatIdx int
}

func (s *stubRand) Intn(n int) int {
	if s.intIdx >= len(s.ints) {
		return 0
	}
	value := s.ints[s.intIdx]
	s.intIdx++
	if n > 0 {
		value %= n
	}
	return value
}

func (s *stubRand) Float64() float64 {
	if s.floatIdx >= len(s.floats) {
		return 0
	}
	value := s.floats[s.floatIdx]
	s.floatIdx++
	return value
}

// seededRand returns a reproducible Rand for property-style tests.
func seededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

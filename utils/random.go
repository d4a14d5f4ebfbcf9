package utils

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource is the only source of randomness used by the simulation.
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a time-seeded generator.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededSource returns a reproducible generator.
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// RandomSign returns -1 or 1 with equal probability.
func RandomSign(rng RandomSource) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// SequenceSource replays a fixed list of values, cycling when exhausted.
// Each value is reduced modulo n. Safe for concurrent use.
type SequenceSource struct {
	mu     sync.Mutex
	values []int
	next   int
}

func NewSequenceSource(values ...int) *SequenceSource {
	if len(values) == 0 {
		values = []int{0}
	}
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next%len(s.values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Draws returns how many values have been consumed.
func (s *SequenceSource) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// LockedSource serializes access to a RandomSource shared between goroutines.
type LockedSource struct {
	mu  sync.Mutex
	src RandomSource
}

func NewLockedSource(src RandomSource) *LockedSource {
	return &LockedSource{src: src}
}

func (l *LockedSource) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Intn(n)
}

package engine

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the randomness provider for outcome sampling and random weapon
// picks. Implementations must be safe for concurrent use. Gameplay randomness
// does not need to be cryptographic.
type Source interface {
	// Float64 returns a uniform random value in [0, 1).
	Float64() float64
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// lockedSource wraps math/rand with a mutex so one Source can be shared
// across request handlers.
type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a Source seeded from the current time.
func NewSource() Source {
	return NewSeededSource(time.Now().UnixNano())
}

// NewSeededSource returns a deterministic Source for tests.
func NewSeededSource(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

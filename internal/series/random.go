package series

import (
	"math/rand/v2"
	"sync"
)

// RandomSource yields uniform samples in [0, 1).
type RandomSource interface {
	Float64() float64
}

// lockedSource serializes access to a *rand.Rand, which is not safe for concurrent use.
type lockedSource struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rand.Float64()
}

// NewRandomSource returns a source seeded from the runtime entropy pool.
// It is safe to share between goroutines.
func NewRandomSource() RandomSource {
	return &lockedSource{rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededRandomSource returns a reproducible source. It is safe to share between goroutines.
func NewSeededRandomSource(seed uint64) RandomSource {
	return &lockedSource{rand: rand.New(rand.NewPCG(seed, seed))}
}

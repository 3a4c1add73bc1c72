// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so a whole run can be replayed.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a generator with the given seed. A zero seed uses
// the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns an int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Jitter returns a value in [-amplitude, amplitude). Zero amplitude always
// yields zero and does not advance the generator.
func (s *PRNGService) Jitter(amplitude float64) float64 {
	if amplitude == 0 {
		return 0
	}
	return (s.rng.Float64()*2 - 1) * amplitude
}

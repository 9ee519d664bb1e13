// Package rng provides the injected random source used by outcome resolution.
//
// All randomness in the engine flows through a Source so any resolution can
// be replayed exactly by re-seeding. Nothing outside this package reaches for
// a global generator.
package rng

import (
	"math/rand"
)

//go:generate mockgen -destination=mock/mock.go -package=rngmock github.com/ironvale/guild-api/internal/pkg/rng Source

// Source produces uniform random values in [0, 1)
type Source interface {
	Float64() float64
}

type seeded struct {
	r *rand.Rand
}

// NewSeeded returns a deterministic Source for the given seed.
// The same seed always yields the same sequence of draws.
func NewSeeded(seed int64) Source {
	return &seeded{r: rand.New(rand.NewSource(seed))} // #nosec G404 -- game outcomes, not crypto
}

// Float64 returns the next uniform draw
func (s *seeded) Float64() float64 {
	return s.r.Float64()
}

// Fixed is a Source that always returns the same value, for tests
type Fixed struct {
	V float64
}

// Float64 returns the fixed value
func (f *Fixed) Float64() float64 {
	return f.V
}

// Sequence is a Source that replays a scripted list of draws, for tests.
// Once exhausted it repeats the final value.
type Sequence struct {
	Values []float64
	i      int
}

// Float64 returns the next scripted value
func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	if s.i >= len(s.Values) {
		return s.Values[len(s.Values)-1]
	}
	v := s.Values[s.i]
	s.i++
	return v
}

package rng

import (
	"fmt"
	"math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded is a reproducible generator backed by math/rand
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a generator that always produces the same sequence for the same seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 <= x < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}

// Seed returns the seed the generator was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}

// New returns the generator by name
// "crypto" (or an empty name) returns Crypto, "seeded" returns Seeded
func New(name string, seed int64) (Generator, error) {
	switch name {
	case "", "crypto":
		return Crypto{}, nil
	case "seeded":
		return NewSeeded(seed), nil
	}

	return nil, fmt.Errorf("unknown rng source: %s", name)
}

package sim

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource is the explicit random handle threaded through a run.
type RandomSource interface {
	Float64() float64 // [0, 1)
	IntN(n int) int   // [0, n)
}

// Replicable RNG; one PCG stream per handle.
type seededRNG struct{ r *rand.Rand }

// NewSeededRNG returns a reproducible source for the given seed.
func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

// NewRunRNG returns the source for run index i of a batch seeded with seed.
// Every run gets its own stream so runs never share draws, whichever
// goroutine executes them.
func NewRunRNG(seed uint64, i int) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, uint64(i)+1))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }
func (s *seededRNG) IntN(n int) int   { return s.r.IntN(n) }

// RandomSeed reads 64 bits from crypto/rand, falling back to math/rand/v2.
func RandomSeed() uint64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Uint64()
	}
	return binary.BigEndian.Uint64(buf[:])
}

// chance reports a Bernoulli hit with probability p.
// p <= 0 => no hit, p >= 1 => always hit; neither consumes a draw.
func chance(p float64, rng RandomSource) bool {
	if !(p > 0) {
		return false
	}
	if p >= 1 {
		return true
	}
	return rng.Float64() < p
}

// intBetween draws uniformly from [lo, hi].
func intBetween(lo, hi int, rng RandomSource) int {
	return lo + rng.IntN(hi-lo+1)
}

// floatBetween draws uniformly from [lo, hi).
func floatBetween(lo, hi float64, rng RandomSource) float64 {
	return lo + (hi-lo)*rng.Float64()
}

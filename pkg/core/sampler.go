package core

import (
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Range(min, max float64) float64
	Normal(mean, stddev float64) float64
}

// PathSampler is a deterministic sampler derived from an
// (iteration, path index, depth) triple. Two samplers built from the same
// triple produce identical streams; changing any component of the triple
// produces a decorrelated stream, so concurrent paths never share state.
type PathSampler struct {
	random *rand.Rand
}

// NewPathSampler creates a sampler seeded from the packed stream coordinates
func NewPathSampler(iteration, index, depth int) *PathSampler {
	seed := mixSeed(uint64(iteration), uint64(index), uint64(depth))
	return &PathSampler{random: rand.New(rand.NewSource(int64(seed)))}
}

// Get1D returns a random float64 in [0, 1)
func (s *PathSampler) Get1D() float64 {
	return s.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (s *PathSampler) Get2D() Vec2 {
	return NewVec2(s.random.Float64(), s.random.Float64())
}

// Range returns a uniformly distributed value in [min, max)
func (s *PathSampler) Range(min, max float64) float64 {
	return min + (max-min)*s.random.Float64()
}

// Normal returns a normally distributed value with the given mean and stddev
func (s *PathSampler) Normal(mean, stddev float64) float64 {
	return mean + stddev*s.random.NormFloat64()
}

// mixSeed combines the stream coordinates with a multiplicative/XOR hash so
// that neighboring iterations, paths, and depths do not alias to correlated
// streams. Constants are the splitmix64 finalizer.
func mixSeed(iteration, index, depth uint64) uint64 {
	h := iteration*0x9e3779b97f4a7c15 ^ index*0xbf58476d1ce4e5b9 ^ depth*0x94d049bb133111eb
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

package core

import (
	"fmt"
	"math/rand"
)

// MaxRejectionAttempts caps the rejection sampling loops. The expected number of
// draws is below 2, so reaching the cap means the generator is broken.
const MaxRejectionAttempts = 1_000_000

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; every worker owns its own instance.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded from seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomVec3 returns a vector with each component uniform in [minVal, maxVal)
func RandomVec3(sampler Sampler, minVal, maxVal float64) Vec3 {
	s := sampler.Get3D()
	span := maxVal - minVal
	return NewVec3(minVal+span*s.X, minVal+span*s.Y, minVal+span*s.Z)
}

// RandomInUnitSphere returns a point uniformly distributed inside the unit sphere.
// Points are drawn in the [-1,1)^3 cube and rejected until one lands inside.
// Panics with ErrRejectionSampling if no point is accepted within MaxRejectionAttempts.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for i := 0; i < MaxRejectionAttempts; i++ {
		p := RandomVec3(sampler, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
	panic(fmt.Errorf("%w: unit sphere after %d draws", ErrRejectionSampling, MaxRejectionAttempts))
}

// RandomUnitVector returns a direction uniformly distributed on the unit sphere
func RandomUnitVector(sampler Sampler) Vec3 {
	return RandomInUnitSphere(sampler).Normalize()
}

// RandomInUnitDisk returns a point uniformly distributed inside the unit disk in the XY plane.
// Same rejection scheme and cap as RandomInUnitSphere.
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for i := 0; i < MaxRejectionAttempts; i++ {
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
	panic(fmt.Errorf("%w: unit disk after %d draws", ErrRejectionSampling, MaxRejectionAttempts))
}

package core

import (
	"errors"
	"math"
	"testing"
)

// constantSampler always returns the same value, which makes rejection loops spin forever
type constantSampler struct {
	value float64
	calls int
}

func (c *constantSampler) Get1D() float64 {
	c.calls++
	return c.value
}

func (c *constantSampler) Get2D() Vec2 {
	c.calls++
	return NewVec2(c.value, c.value)
}

func (c *constantSampler) Get3D() Vec3 {
	c.calls++
	return NewVec3(c.value, c.value, c.value)
}

func TestRandomSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(42)
	b := NewSeededSampler(42)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Samplers with the same seed should produce the same stream")
		}
	}
}

func TestRandomVec3_Range(t *testing.T) {
	sampler := NewSeededSampler(1)
	for i := 0; i < 1000; i++ {
		v := RandomVec3(sampler, -2, 3)
		for _, c := range []float64{v.X, v.Y, v.Z} {
			if c < -2 || c >= 3 {
				t.Fatalf("Component %f out of range [-2, 3)", c)
			}
		}
	}
}

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point %v is outside the unit sphere", p)
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit length, got %f", v.Length())
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Disk sample should lie in the XY plane, got %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("Point %v is outside the unit disk", p)
		}
	}
}

func TestRejectionSampling_BrokenGenerator(t *testing.T) {
	tests := []struct {
		name string
		fn   func(Sampler) Vec3
	}{
		{"unit sphere", RandomInUnitSphere},
		{"unit disk", RandomInUnitDisk},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Always maps to the corner (1,1,1), which is never accepted
			sampler := &constantSampler{value: 1}

			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("Expected panic from a generator that never lands inside")
				}
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrRejectionSampling) {
					t.Errorf("Expected ErrRejectionSampling, got %v", r)
				}
				if sampler.calls != MaxRejectionAttempts {
					t.Errorf("Expected %d draws, got %d", MaxRejectionAttempts, sampler.calls)
				}
			}()

			tt.fn(sampler)
		})
	}
}

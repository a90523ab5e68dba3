package core

import "testing"

func TestRay_At(t *testing.T) {
	tests := []struct {
		name      string
		origin    Vec3
		direction Vec3
		t         float64
		expected  Vec3
	}{
		{"origin at zero", NewVec3(0, 0, 0), NewVec3(1, 1, 1), 0, NewVec3(0, 0, 0)},
		{"unit step from zero", NewVec3(0, 0, 0), NewVec3(1, 1, 1), 1, NewVec3(1, 1, 1)},
		{"two steps from zero", NewVec3(0, 0, 0), NewVec3(1, 1, 1), 2, NewVec3(2, 2, 2)},
		{"unit step", NewVec3(1, 2, 3), NewVec3(1, 2, 3), 1, NewVec3(2, 4, 6)},
		{"two steps", NewVec3(1, 2, 3), NewVec3(1, 2, 3), 2, NewVec3(3, 6, 9)},
		{"negative t", NewVec3(1, 0, 0), NewVec3(0, 0, -2), -1, NewVec3(1, 0, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(tt.origin, tt.direction)
			if got := ray.At(tt.t); !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRay_AtEndpoints(t *testing.T) {
	sampler := NewSeededSampler(7)
	for i := 0; i < 100; i++ {
		ray := NewRay(RandomVec3(sampler, -10, 10), RandomVec3(sampler, -10, 10))
		if !ray.At(0).Equals(ray.Origin) {
			t.Fatalf("At(0) should equal origin for %v", ray)
		}
		if !ray.At(1).Equals(ray.Origin.Add(ray.Direction)) {
			t.Fatalf("At(1) should equal origin+direction for %v", ray)
		}
	}
}

package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(5), NewVec3(5, 10, 15)},
		{"Divide", NewVec3(4, 2, 6).Divide(2), NewVec3(2, 1, 3)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", a.Cross(b), NewVec3(27, 6, -13)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if d := a.Dot(b); d != 12 {
		t.Errorf("Expected dot product 12, got %f", d)
	}
}

func TestVec3_CrossIsOrthogonal(t *testing.T) {
	a := NewVec3(0.3, -1.2, 2.5)
	b := NewVec3(-4, 0.5, 1)
	c := a.Cross(b)

	const tolerance = 1e-12
	if math.Abs(c.Dot(a)) > tolerance || math.Abs(c.Dot(b)) > tolerance {
		t.Errorf("Cross product %v should be orthogonal to both inputs", c)
	}
}

func TestVec3_LengthAndNormalize(t *testing.T) {
	v := NewVec3(3, 4, 12)
	if v.Length() != 13 {
		t.Errorf("Expected length 13, got %f", v.Length())
	}
	if v.LengthSquared() != 169 {
		t.Errorf("Expected squared length 169, got %f", v.LengthSquared())
	}

	unit := v.Normalize()
	if math.Abs(unit.Length()-1) > 1e-12 {
		t.Errorf("Normalized vector should have unit length, got %f", unit.Length())
	}

	zero := Vec3{}.Normalize()
	if !zero.Equals(Vec3{}) {
		t.Errorf("Normalizing the zero vector should give zero, got %v", zero)
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"zero", NewVec3(0, 0, 0), true},
		{"tiny", NewVec3(1e-9, -1e-9, 5e-9), true},
		{"one component above threshold", NewVec3(1e-9, 2e-8, 0), false},
		{"unit", NewVec3(0, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%v) = %t, expected %t", tt.v, got, tt.expected)
			}
		})
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Ordinary vector should be finite")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if NewVec3(0, math.Inf(-1), 0).IsFinite() {
		t.Error("Infinite component should not be finite")
	}
}

func TestReflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	got := Reflect(v, n)
	expected := NewVec3(1, 1, 0)
	if !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestRefract(t *testing.T) {
	n := NewVec3(0, 1, 0)

	t.Run("matched indices pass straight through", func(t *testing.T) {
		uv := NewVec3(1, -1, 0).Normalize()
		got := Refract(uv, n, 1.0)
		if got.Subtract(uv).Length() > 1e-12 {
			t.Errorf("Expected %v, got %v", uv, got)
		}
	})

	t.Run("obeys Snell's law", func(t *testing.T) {
		uv := NewVec3(1, -1, 0).Normalize()
		ratio := 1.0 / 1.5
		got := Refract(uv, n, ratio)

		sinIn := math.Sqrt(1 - math.Pow(uv.Negate().Dot(n), 2))
		sinOut := math.Sqrt(1 - math.Pow(got.Negate().Dot(n), 2))
		if math.Abs(sinOut-ratio*sinIn) > 1e-12 {
			t.Errorf("Expected sin(out) = %f, got %f", ratio*sinIn, sinOut)
		}
		if math.Abs(got.Length()-1) > 1e-12 {
			t.Errorf("Refracted unit vector should stay unit length, got %f", got.Length())
		}
	})
}

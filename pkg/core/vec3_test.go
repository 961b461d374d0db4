package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, 7, 9)},
		{"subtract", b.Subtract(a), NewVec3(3, 3, 3)},
		{"multiply scalar", a.Multiply(2), NewVec3(2, 4, 6)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, 10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"clamp", NewVec3(-1, 0.5, 2).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := NewVec3(3, 4, 0)

	if got := a.Dot(NewVec3(1, 0, 0)); got != 3 {
		t.Errorf("Expected dot 3, got %f", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := a.LengthSquared(); got != 25 {
		t.Errorf("Expected squared length 25, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(0, 3, 4).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	// Zero vectors normalize to zero rather than NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_Component(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for i, expected := range []float64{1, 2, 3} {
		if got := v.Component(i); got != expected {
			t.Errorf("Component(%d): expected %f, got %f", i, expected, got)
		}
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, -1))
	got := ray.At(2.5)
	expected := NewVec3(1, 0, -2.5)
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

package geometry

import (
	"math"
	"testing"

	"github.com/solemnwind/go-wavefront-pathtracer/pkg/core"
)

func axisBox(center, size core.Vec3) *Primitive {
	return NewPrimitive(KindBox, center, core.NewVec3(0, 0, 0), size, 0)
}

func TestBox_AxisAlignedHits(t *testing.T) {
	box := axisBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 2, 2))

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{"+z face", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 4, core.NewVec3(0, 0, 1)},
		{"-z face", core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 4, core.NewVec3(0, 0, -1)},
		{"+x face", core.NewVec3(3, 0, 0), core.NewVec3(-1, 0, 0), 2, core.NewVec3(1, 0, 0)},
		{"-y face", core.NewVec3(0, -4, 0), core.NewVec3(0, 1, 0), 3, core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := box.Intersect(core.NewRay(tt.origin, tt.direction))
			if hit.T < 0 {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if !hit.Outside {
				t.Error("Expected outside classification")
			}
		})
	}
}

func TestBox_Miss(t *testing.T) {
	box := axisBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 2, 2))

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
	}{
		{"offset parallel", core.NewVec3(3, 0, 5), core.NewVec3(0, 0, -1)},
		{"pointing away", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)},
		{"parallel slab outside", core.NewVec3(0, 3, 5), core.NewVec3(0, 0, -1)},
		{"diagonal near corner", core.NewVec3(5, 5, 5), core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := box.Intersect(core.NewRay(tt.origin, tt.direction))
			if hit.T >= 0 {
				t.Errorf("Expected miss, but got hit at t=%f", hit.T)
			}
		})
	}
}

func TestBox_InsideHit(t *testing.T) {
	box := axisBox(core.NewVec3(0, 0, 0), core.NewVec3(2, 2, 2))
	hit := box.Intersect(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)))

	if hit.T < 0 {
		t.Fatal("Expected hit from inside, but got miss")
	}
	if hit.Outside {
		t.Error("Expected inside classification")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1.0, got t=%f", hit.T)
	}
	// Normal opposes the ray, matching the sphere convention
	expected := core.NewVec3(0, 0, 1)
	if hit.Normal.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected normal %v, got %v", expected, hit.Normal)
	}
}

func TestBox_Rotated(t *testing.T) {
	// A box rotated 45° around Y presents a corner edge to a ray along -z;
	// the hit distance shrinks by the diagonal half-width sqrt(2)/2 * size
	box := NewPrimitive(KindBox, core.NewVec3(0, 0, 0),
		core.NewVec3(0, math.Pi/4, 0), core.NewVec3(2, 2, 2), 0)
	hit := box.Intersect(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))

	if hit.T < 0 {
		t.Fatal("Expected hit, but got miss")
	}
	expected := 5 - math.Sqrt(2)
	if math.Abs(hit.T-expected) > 1e-9 {
		t.Errorf("Expected t=%f, got t=%f", expected, hit.T)
	}
}

func TestBox_ThinWall(t *testing.T) {
	// Cornell-style wall: a box scaled thin on one axis
	wall := axisBox(core.NewVec3(0, 0, -5), core.NewVec3(10, 10, 0.1))
	hit := wall.Intersect(core.NewRay(core.NewVec3(2, 3, 0), core.NewVec3(0, 0, -1)))

	if hit.T < 0 {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4.95) > 1e-9 {
		t.Errorf("Expected t=4.95, got t=%f", hit.T)
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}
}

func TestPrimitive_Animate(t *testing.T) {
	prim := NewPrimitive(KindSphere, core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0),
		core.NewVec3(2, 2, 2), 0)
	prim.Velocity = core.NewVec3(1, 0, 0)

	prim.Animate(0.5)
	hit := prim.Intersect(core.NewRay(core.NewVec3(0.5, 0, 5), core.NewVec3(0, 0, -1)))
	if hit.T < 0 || math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected moved sphere hit at t=4.0, got t=%f", hit.T)
	}

	// Animation offsets from the base translation, it does not accumulate
	prim.Animate(0)
	hit = prim.Intersect(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)))
	if hit.T < 0 || math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected reset sphere hit at t=4.0, got t=%f", hit.T)
	}
}

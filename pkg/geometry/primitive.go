package geometry

import (
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/core"
)

// Kind identifies the primitive type. The set is closed: spheres and boxes.
type Kind int

const (
	KindSphere Kind = iota
	KindBox
)

// String returns a human-readable primitive kind name
func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	default:
		return "unknown"
	}
}

// Hit describes a ray/primitive intersection. T < 0 means no hit.
type Hit struct {
	T       float64   // World-space distance from ray origin, negative = miss
	Point   core.Vec3 // World-space intersection point
	Normal  core.Vec3 // World-space surface normal (unit length)
	Outside bool      // Whether the ray origin was outside the primitive
}

// miss is the sentinel returned when a ray does not intersect a primitive
var miss = Hit{T: -1}

// Primitive is one piece of scene geometry: a canonical unit shape placed in
// the world by a translate/rotate/scale transform. Spheres have radius 0.5
// and boxes side length 1 in object space, so Scale is the world diameter.
type Primitive struct {
	Kind       Kind
	Translation core.Vec3
	Rotation    core.Vec3 // Euler angles in radians, applied X then Y then Z
	Scale       core.Vec3
	MaterialID  int

	// Velocity is the linear motion applied by Animate for motion blur.
	// Zero velocity means the primitive is static.
	Velocity core.Vec3

	// Derived matrices, recomputed by SetTransform
	transform        Mat4
	inverse          Mat4
	inverseTranspose Mat4

	// Translation as loaded from the scene, before any animation offset
	baseTranslation core.Vec3
}

// NewPrimitive creates a primitive and computes its transform matrices
func NewPrimitive(kind Kind, translation, rotation, scale core.Vec3, materialID int) *Primitive {
	p := &Primitive{
		Kind:            kind,
		Translation:     translation,
		Rotation:        rotation,
		Scale:           scale,
		MaterialID:      materialID,
		baseTranslation: translation,
	}
	p.SetTransform()
	return p
}

// SetTransform recomputes the derived matrices from translation, rotation and
// scale. Must be called after mutating any of those fields directly.
func (p *Primitive) SetTransform() {
	rotation := RotateX(p.Rotation.X).
		Multiply(RotateY(p.Rotation.Y)).
		Multiply(RotateZ(p.Rotation.Z))
	p.transform = Translate(p.Translation).
		Multiply(rotation).
		Multiply(Scale(p.Scale))

	invRotation := RotateZ(-p.Rotation.Z).
		Multiply(RotateY(-p.Rotation.Y)).
		Multiply(RotateX(-p.Rotation.X))
	invScale := core.NewVec3(safeInv(p.Scale.X), safeInv(p.Scale.Y), safeInv(p.Scale.Z))
	p.inverse = Scale(invScale).
		Multiply(invRotation).
		Multiply(Translate(p.Translation.Negate()))

	p.inverseTranspose = p.inverse.Transpose()
}

// Animate moves the primitive to its position at time t within the exposure
// window, applying linear motion from the base translation
func (p *Primitive) Animate(t float64) {
	p.Translation = p.baseTranslation.Add(p.Velocity.Multiply(t))
	p.SetTransform()
}

// Intersect tests the ray against the primitive and returns the nearest
// positive hit, or a miss with a negative T. Degenerate rays with a
// zero-length direction never intersect anything.
func (p *Primitive) Intersect(ray core.Ray) Hit {
	if ray.Direction.LengthSquared() == 0 {
		return miss
	}
	switch p.Kind {
	case KindSphere:
		return p.intersectSphere(ray)
	case KindBox:
		return p.intersectBox(ray)
	default:
		return miss
	}
}

func safeInv(v float64) float64 {
	if v == 0 {
		return 0
	}
	return 1.0 / v
}

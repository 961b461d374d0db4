package geometry

import (
	"math"

	"github.com/solemnwind/go-wavefront-pathtracer/pkg/core"
)

// sphereRadius is the radius of the canonical object-space sphere
const sphereRadius = 0.5

// intersectSphere tests a ray against the canonical unit-diameter sphere in
// object space and maps the result back to world space
func (p *Primitive) intersectSphere(ray core.Ray) Hit {
	// Transform the ray into object space
	origin := p.inverse.MulPoint(ray.Origin)
	direction := p.inverse.MulDirection(ray.Direction).Normalize()

	// Quadratic equation coefficients for |o + t*d|² = r²
	// Direction is unit length, so a = 1
	halfB := origin.Dot(direction)
	c := origin.Dot(origin) - sphereRadius*sphereRadius

	discriminant := halfB*halfB - c
	if discriminant < 0 {
		return miss
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := -halfB - sqrtD
	t2 := -halfB + sqrtD
	if t2 < 0 {
		// Both intersections behind the ray origin
		return miss
	}

	// When the near root is behind the origin, the origin is inside the
	// sphere and the far root is the exit point
	t := t1
	outside := true
	if t1 < 0 {
		t = t2
		outside = false
	}

	objPoint := origin.Add(direction.Multiply(t))
	point := p.transform.MulPoint(objPoint)
	normal := p.inverseTranspose.MulDirection(objPoint).Normalize()
	if !outside {
		normal = normal.Negate()
	}

	return Hit{
		T:       point.Subtract(ray.Origin).Length(),
		Point:   point,
		Normal:  normal,
		Outside: outside,
	}
}

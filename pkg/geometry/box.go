package geometry

import (
	"math"

	"github.com/solemnwind/go-wavefront-pathtracer/pkg/core"
)

// boxHalfExtent is the half side length of the canonical object-space cube
const boxHalfExtent = 0.5

// intersectBox tests a ray against the canonical unit cube in object space
// using the slab method and maps the result back to world space
func (p *Primitive) intersectBox(ray core.Ray) Hit {
	origin := p.inverse.MulPoint(ray.Origin)
	direction := p.inverse.MulDirection(ray.Direction).Normalize()

	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	var tMinNormal, tMaxNormal core.Vec3

	for axis := 0; axis < 3; axis++ {
		d := direction.Component(axis)
		o := origin.Component(axis)

		if math.Abs(d) < 1e-12 {
			// Ray parallel to this slab: miss unless the origin lies inside it
			if o < -boxHalfExtent || o > boxHalfExtent {
				return miss
			}
			continue
		}

		t1 := (-boxHalfExtent - o) / d
		t2 := (boxHalfExtent - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		// The ray always enters against its direction of travel on this
		// axis and exits along it
		if t1 > tMin {
			tMin = t1
			tMinNormal = axisNormal(axis, -math.Copysign(1, d))
		}
		if t2 < tMax {
			tMax = t2
			tMaxNormal = axisNormal(axis, math.Copysign(1, d))
		}
	}

	if tMax < tMin || tMax < 0 {
		return miss
	}

	// When the entry point is behind the origin, the origin is inside the
	// box and the exit point is the hit. The normal always opposes the
	// incident ray, matching the sphere convention.
	t := tMin
	normal := tMinNormal
	outside := true
	if tMin < 0 {
		t = tMax
		normal = tMaxNormal.Negate()
		outside = false
	}

	objPoint := origin.Add(direction.Multiply(t))
	point := p.transform.MulPoint(objPoint)
	worldNormal := p.inverseTranspose.MulDirection(normal).Normalize()

	return Hit{
		T:       point.Subtract(ray.Origin).Length(),
		Point:   point,
		Normal:  worldNormal,
		Outside: outside,
	}
}

func axisNormal(axis int, sign float64) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(sign, 0, 0)
	case 1:
		return core.NewVec3(0, sign, 0)
	default:
		return core.NewVec3(0, 0, sign)
	}
}

package material

import (
	"math"

	"github.com/solemnwind/go-wavefront-pathtracer/pkg/core"
)

// originEpsilon is how far scattered ray origins are nudged along the new
// direction to avoid immediately re-intersecting the surface they left
const originEpsilon = 1e-4

// SurfaceHit carries the geometric context scattering needs
type SurfaceHit struct {
	Point   core.Vec3 // World-space hit point
	Normal  core.Vec3 // World-space surface normal, unit length
	Outside bool      // Whether the incoming ray originated outside the surface
}

// Scatter computes the bounced ray and the color attenuation to fold into
// the path throughput. effectiveIOR and effectiveColor come from
// ResolveChannel so dispersive materials see their per-channel values.
// Emissive materials never reach this function; the shading stage
// terminates those paths directly.
func (m Material) Scatter(rayIn core.Ray, hit SurfaceHit, effectiveIOR float64, effectiveColor core.Vec3, sampler core.Sampler) (core.Ray, core.Vec3) {
	unitDirection := rayIn.Direction.Normalize()

	var direction core.Vec3
	switch {
	case m.Refractive:
		direction = m.refractOrReflect(unitDirection, hit, effectiveIOR, sampler)
	case m.Reflective:
		direction = m.reflect(unitDirection, hit, sampler)
	default:
		direction = core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())
	}

	scattered := core.Ray{
		Origin:    hit.Point.Add(direction.Multiply(originEpsilon)),
		Direction: direction,
	}
	return scattered, effectiveColor
}

// refractOrReflect stochastically chooses between Fresnel reflection and
// Snell refraction, forcing reflection under total internal reflection
func (m Material) refractOrReflect(unitDirection core.Vec3, hit SurfaceHit, effectiveIOR float64, sampler core.Sampler) core.Vec3 {
	var refractionRatio float64
	if hit.Outside {
		refractionRatio = 1.0 / effectiveIOR // Entering the material
	} else {
		refractionRatio = effectiveIOR // Exiting the material
	}

	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	cannotRefract := refractionRatio*sinTheta > 1.0
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		return reflectVector(unitDirection, hit.Normal)
	}
	return refractVector(unitDirection, hit.Normal, refractionRatio)
}

// reflect computes a mirror bounce, perturbed by roughness. A perturbed
// direction that dips below the surface falls back to diffuse scattering
// rather than failing.
func (m Material) reflect(unitDirection core.Vec3, hit SurfaceHit, sampler core.Sampler) core.Vec3 {
	reflected := reflectVector(unitDirection, hit.Normal)
	if m.Roughness > 0 {
		perturbation := sampleInUnitSphere(sampler).Multiply(m.Roughness)
		reflected = reflected.Add(perturbation)
	}
	if reflected.Dot(hit.Normal) <= 0 {
		return core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())
	}
	return reflected.Normalize()
}

// reflectVector calculates the reflection of a vector v off a surface with
// normal n: r = v - 2*dot(v,n)*n
func reflectVector(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refractVector calculates the refraction of a vector using Snell's law
func refractVector(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's
// approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// sampleInUnitSphere generates a random point inside a unit sphere
func sampleInUnitSphere(sampler core.Sampler) core.Vec3 {
	for {
		p := core.NewVec3(
			sampler.Range(-1, 1),
			sampler.Range(-1, 1),
			sampler.Range(-1, 1),
		)
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}

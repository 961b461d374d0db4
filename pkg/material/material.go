package material

import (
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/core"
)

// Material describes how a surface interacts with light. Materials are
// read-only for the lifetime of a render session.
type Material struct {
	Color      core.Vec3 // Base color
	Emittance  float64   // > 0 marks a light source
	Reflective bool      // Mirror reflection
	Refractive bool      // Transmission with Fresnel reflection

	// IndexOfRefraction is used for refractive materials. When Dispersive
	// is set, DispersiveIOR holds one index per RGB wavelength channel and
	// IndexOfRefraction is ignored.
	IndexOfRefraction float64
	Dispersive        bool
	DispersiveIOR     [3]float64

	// Roughness perturbs mirror reflections: 0 = perfect mirror
	Roughness float64
}

// IsEmissive reports whether this material is a light source
func (m Material) IsEmissive() bool {
	return m.Emittance > 0
}

// Emission returns the radiance contributed when a path terminates at this
// material
func (m Material) Emission() core.Vec3 {
	return m.Color.Multiply(m.Emittance)
}

// ResolveChannel returns the effective index of refraction and effective
// color for the given iteration. Dispersive materials sample a single
// wavelength channel per iteration (iteration mod 3) with that channel
// scaled by 3, so accumulation over many iterations recovers full color.
func (m Material) ResolveChannel(iteration int) (float64, core.Vec3) {
	if !m.Dispersive {
		return m.IndexOfRefraction, m.Color
	}

	channel := iteration % 3
	ior := m.DispersiveIOR[channel]
	color := core.Vec3{}
	switch channel {
	case 0:
		color.X = 3 * m.Color.X
	case 1:
		color.Y = 3 * m.Color.Y
	case 2:
		color.Z = 3 * m.Color.Z
	}
	return ior, color
}

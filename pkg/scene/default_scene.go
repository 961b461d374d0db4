package scene

import (
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/core"
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/geometry"
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/material"
)

// NewDefaultScene creates an open scene with a ground plane, an overhead
// light, and a row of spheres showing off each material kind: diffuse,
// rough mirror, dispersive glass, and a motion-blurred mover
func NewDefaultScene() *Scene {
	materials := []material.Material{
		{Color: core.NewVec3(1, 1, 1), Emittance: 8},   // 0: light
		{Color: core.NewVec3(0.8, 0.8, 0.8)},           // 1: ground
		{Color: core.NewVec3(0.75, 0.3, 0.3)},          // 2: red diffuse
		{Color: core.NewVec3(0.9, 0.9, 0.9), Reflective: true, Roughness: 0.08}, // 3: brushed mirror
		{ // 4: dispersive glass
			Color:         core.NewVec3(1, 1, 1),
			Refractive:    true,
			Dispersive:    true,
			DispersiveIOR: [3]float64{1.51, 1.53, 1.55},
		},
		{Color: core.NewVec3(0.3, 0.45, 0.8)}, // 5: blue diffuse mover
	}

	unit := core.NewVec3(0, 0, 0)
	mover := geometry.NewPrimitive(geometry.KindSphere, core.NewVec3(2.2, 0.5, -0.5), unit, core.NewVec3(1, 1, 1), 5)
	mover.Velocity = core.NewVec3(1.5, 0, 0)

	geoms := []*geometry.Primitive{
		geometry.NewPrimitive(geometry.KindBox, core.NewVec3(0, -0.1, 0), unit, core.NewVec3(20, 0.2, 20), 1),
		geometry.NewPrimitive(geometry.KindBox, core.NewVec3(0, 6, 0), unit, core.NewVec3(6, 0.2, 6), 0),
		geometry.NewPrimitive(geometry.KindSphere, core.NewVec3(-2.2, 0.75, 0), unit, core.NewVec3(1.5, 1.5, 1.5), 2),
		geometry.NewPrimitive(geometry.KindSphere, core.NewVec3(0, 1, -1), unit, core.NewVec3(2, 2, 2), 3),
		geometry.NewPrimitive(geometry.KindSphere, core.NewVec3(0.9, 0.6, 1.2), unit, core.NewVec3(1.2, 1.2, 1.2), 4),
		mover,
	}

	return &Scene{
		Camera: CameraConfig{
			Position:      core.NewVec3(0, 1.5, 6),
			LookAt:        core.NewVec3(0, 0.75, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          40,
			Aperture:      0.1,
			FocusDistance: 0, // Auto-focus on the look-at target
		},
		Geometry:  geoms,
		Materials: materials,
		Settings: Settings{
			Width:      400,
			Height:     225,
			TraceDepth: 8,
			Exposure:   0.4,
		},
	}
}

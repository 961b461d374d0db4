package scene

import (
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/core"
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/geometry"
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/material"
)

// Material table indices for the Cornell scene
const (
	cornellLight = iota
	cornellWhite
	cornellRed
	cornellGreen
	cornellMirror
	cornellGlass
)

// NewCornellScene creates the classic Cornell box: colored walls, a ceiling
// light, a mirror sphere, and a glass sphere
func NewCornellScene() *Scene {
	materials := []material.Material{
		cornellLight:  {Color: core.NewVec3(1, 1, 1), Emittance: 5},
		cornellWhite:  {Color: core.NewVec3(0.98, 0.98, 0.98)},
		cornellRed:    {Color: core.NewVec3(0.85, 0.35, 0.35)},
		cornellGreen:  {Color: core.NewVec3(0.35, 0.85, 0.35)},
		cornellMirror: {Color: core.NewVec3(0.98, 0.98, 0.98), Reflective: true},
		cornellGlass: {
			Color:             core.NewVec3(1, 1, 1),
			Refractive:        true,
			IndexOfRefraction: 1.52,
		},
	}

	unit := core.NewVec3(0, 0, 0)
	geoms := []*geometry.Primitive{
		// Ceiling light panel
		geometry.NewPrimitive(geometry.KindBox, core.NewVec3(0, 9.95, 0), unit, core.NewVec3(4, 0.1, 4), cornellLight),
		// Floor, ceiling, back wall
		geometry.NewPrimitive(geometry.KindBox, core.NewVec3(0, -0.05, 0), unit, core.NewVec3(10, 0.1, 10), cornellWhite),
		geometry.NewPrimitive(geometry.KindBox, core.NewVec3(0, 10.05, 0), unit, core.NewVec3(10, 0.1, 10), cornellWhite),
		geometry.NewPrimitive(geometry.KindBox, core.NewVec3(0, 5, -5.05), unit, core.NewVec3(10, 10, 0.1), cornellWhite),
		// Left and right walls
		geometry.NewPrimitive(geometry.KindBox, core.NewVec3(-5.05, 5, 0), unit, core.NewVec3(0.1, 10, 10), cornellRed),
		geometry.NewPrimitive(geometry.KindBox, core.NewVec3(5.05, 5, 0), unit, core.NewVec3(0.1, 10, 10), cornellGreen),
		// Spheres
		geometry.NewPrimitive(geometry.KindSphere, core.NewVec3(-1.8, 1.5, -1), unit, core.NewVec3(3, 3, 3), cornellMirror),
		geometry.NewPrimitive(geometry.KindSphere, core.NewVec3(1.8, 1.25, 1), unit, core.NewVec3(2.5, 2.5, 2.5), cornellGlass),
	}

	return &Scene{
		Camera: CameraConfig{
			Position: core.NewVec3(0, 5, 10.5),
			LookAt:   core.NewVec3(0, 5, 0),
			Up:       core.NewVec3(0, 1, 0),
			VFov:     45,
		},
		Geometry:  geoms,
		Materials: materials,
		Settings: Settings{
			Width:      400,
			Height:     400,
			TraceDepth: 8,
		},
	}
}

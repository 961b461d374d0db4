package scene

import (
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/core"
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/geometry"
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/material"
)

// CameraConfig holds the resolved camera parameters handed to the renderer
type CameraConfig struct {
	Position      core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	VFov          float64 // Vertical field of view in degrees
	Aperture      float64 // Lens diameter, 0 disables depth of field
	FocusDistance float64 // Distance to the focal plane when Aperture > 0
}

// Settings holds the per-session render parameters
type Settings struct {
	Width      int
	Height     int
	TraceDepth int     // Bounce budget per path
	Exposure   float64 // Shutter window in seconds for motion blur
}

// Scene is the fully-resolved render input: camera, ordered geometry and
// material lists, and settings. Construction and file parsing belong to
// external collaborators; the renderer only reads this structure.
type Scene struct {
	Camera    CameraConfig
	Geometry  []*geometry.Primitive
	Materials []material.Material
	Settings  Settings
}

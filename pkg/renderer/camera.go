package renderer

import (
	"math"

	"github.com/solemnwind/go-wavefront-pathtracer/pkg/core"
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/scene"
)

// Camera maps pixel indices to primary rays
type Camera struct {
	position      core.Vec3
	view          core.Vec3
	right         core.Vec3
	up            core.Vec3
	pixelLength   core.Vec2 // Angular increment per pixel in view-plane units
	width         int
	height        int
	aperture      float64
	focusDistance float64
}

// NewCamera derives the view basis and per-pixel increments from the
// resolved camera parameters
func NewCamera(cfg scene.CameraConfig, width, height int) *Camera {
	view := cfg.LookAt.Subtract(cfg.Position).Normalize()
	right := view.Cross(cfg.Up).Normalize()
	up := right.Cross(view) // Re-orthogonalized against the view direction

	halfFovY := cfg.VFov * math.Pi / 360.0
	tanY := math.Tan(halfFovY)
	tanX := tanY * float64(width) / float64(height)

	focusDistance := cfg.FocusDistance
	if cfg.Aperture > 0 && focusDistance <= 0 {
		// Default the focal plane to the look-at target
		focusDistance = cfg.LookAt.Subtract(cfg.Position).Length()
	}

	return &Camera{
		position:      cfg.Position,
		view:          view,
		right:         right,
		up:            up,
		pixelLength:   core.NewVec2(2*tanX/float64(width), 2*tanY/float64(height)),
		width:         width,
		height:        height,
		aperture:      cfg.Aperture,
		focusDistance: focusDistance,
	}
}

// GenerateRay produces the primary ray for a pixel index. With antialiasing
// the sub-pixel sample position is jittered by the sampler; otherwise rays
// pass through pixel centers. A non-zero aperture offsets the origin within
// the lens disk and retargets the direction at the focal plane.
func (c *Camera) GenerateRay(index int, sampler core.Sampler, antialias bool) core.Ray {
	x := index % c.width
	y := index / c.width

	jx, jy := 0.5, 0.5
	if antialias {
		jx = sampler.Get1D()
		jy = sampler.Get1D()
	}

	sx := float64(x) + jx - float64(c.width)/2
	sy := float64(y) + jy - float64(c.height)/2

	direction := c.view.
		Add(c.right.Multiply(c.pixelLength.X * sx)).
		Subtract(c.up.Multiply(c.pixelLength.Y * sy)).
		Normalize()

	origin := c.position
	if c.aperture > 0 {
		lens := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.aperture / 2)
		focalPoint := origin.Add(direction.Multiply(c.focusDistance))
		origin = origin.Add(c.right.Multiply(lens.X)).Add(c.up.Multiply(lens.Y))
		direction = focalPoint.Subtract(origin).Normalize()
	}

	return core.NewRay(origin, direction)
}

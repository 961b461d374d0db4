package renderer

import (
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/core"
)

// PathSegment is the state of one light path. It is created once per pixel
// per iteration and mutated in place at every depth level.
type PathSegment struct {
	Ray              core.Ray
	Throughput       core.Vec3 // Accumulated color multiplier, starts at white
	PixelIndex       int       // Originating pixel, preserved through compaction
	RemainingBounces int
}

// Terminated reports whether the path has exhausted its bounce budget or was
// stopped at a light. Termination is a logical state: a terminated path keeps
// its last ray and stays in the active set, where shading skips it, so final
// gather still collects its throughput.
func (p *PathSegment) Terminated() bool {
	return p.RemainingBounces <= 0
}

// Intersection records the nearest hit for one active path at one depth
// level. Records are fully overwritten each depth; a negative T means the
// path hit nothing.
type Intersection struct {
	T          float64
	Normal     core.Vec3
	MaterialID int
	Outside    bool
}

// Hit reports whether the path intersected any geometry this depth
func (it Intersection) Hit() bool {
	return it.T >= 0
}

package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/solemnwind/go-wavefront-pathtracer/pkg/core"
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/geometry"
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/material"
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/scene"
)

// Config contains runtime render configuration. Every field that used to be
// a build-time choice in older tracers is an independently testable toggle
// here.
type Config struct {
	TraceDepth     int  // Bounce budget per path (0 = use scene setting)
	Antialiasing   bool // Jitter sub-pixel sample positions
	SortByMaterial bool // Reorder active paths by material for shading locality
	MotionBlur     bool // Run the geometry update stage each iteration
	NumWorkers     int  // Parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TraceDepth:   8,
		Antialiasing: true,
	}
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Session owns all render state for one scene at one resolution. Buffers
// are allocated once at creation, sized by pixel, primitive, and material
// counts, and reused across every iteration.
type Session struct {
	camera    *Camera
	geometry  []*geometry.Primitive
	materials []material.Material
	config    Config
	width     int
	height    int
	exposure  float64

	accum  []core.Vec3    // Per-pixel accumulation buffer, monotonically summed
	paths  []PathSegment  // Active path set, compacted in place each depth
	isects []Intersection // Intersection records, index-aligned with paths

	iterations int // Completed iterations accumulated into accum
	pool       *WorkerPool
	logger     core.Logger
}

// NewSession validates the scene and allocates all session buffers
func NewSession(sc *scene.Scene, config Config, logger core.Logger) (*Session, error) {
	width, height := sc.Settings.Width, sc.Settings.Height
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("renderer: invalid resolution %dx%d", width, height)
	}
	for i, prim := range sc.Geometry {
		if prim.MaterialID < 0 || prim.MaterialID >= len(sc.Materials) {
			return nil, fmt.Errorf("renderer: %s primitive %d references material %d of %d",
				prim.Kind, i, prim.MaterialID, len(sc.Materials))
		}
	}

	if config.TraceDepth <= 0 {
		config.TraceDepth = sc.Settings.TraceDepth
	}
	if config.TraceDepth <= 0 {
		config.TraceDepth = DefaultConfig().TraceDepth
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	pixelCount := width * height
	return &Session{
		camera:    NewCamera(sc.Camera, width, height),
		geometry:  sc.Geometry,
		materials: sc.Materials,
		config:    config,
		width:     width,
		height:    height,
		exposure:  sc.Settings.Exposure,
		accum:     make([]core.Vec3, pixelCount),
		paths:     make([]PathSegment, pixelCount),
		isects:    make([]Intersection, pixelCount),
		pool:      NewWorkerPool(config.NumWorkers),
		logger:    logger,
	}, nil
}

// Resume seeds the accumulation buffer from a previously saved un-normalized
// sum, continuing the render as if the given iterations had just completed
func (s *Session) Resume(accum []core.Vec3, iterations int) error {
	if len(accum) != len(s.accum) {
		return fmt.Errorf("renderer: resume buffer has %d pixels, session has %d", len(accum), len(s.accum))
	}
	if iterations < 0 {
		return fmt.Errorf("renderer: negative iteration count %d", iterations)
	}
	copy(s.accum, accum)
	s.iterations = iterations
	return nil
}

// Snapshot returns a copy of the un-normalized accumulation buffer and the
// number of iterations it contains, suitable for external saving and a
// later Resume
func (s *Session) Snapshot() ([]core.Vec3, int) {
	accum := make([]core.Vec3, len(s.accum))
	copy(accum, s.accum)
	return accum, s.iterations
}

// Iterations returns the number of completed iterations
func (s *Session) Iterations() int {
	return s.iterations
}

// Size returns the session resolution
func (s *Session) Size() (width, height int) {
	return s.width, s.height
}

// Frame derives the displayable image from the accumulation buffer: each
// pixel is the accumulated sum divided by the iteration count, clamped to
// the display range
func (s *Session) Frame() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	if s.iterations == 0 {
		return img
	}

	invIterations := 1.0 / float64(s.iterations)
	for i, sum := range s.accum {
		avg := sum.Multiply(invIterations).Clamp(0.0, 1.0)
		img.SetRGBA(i%s.width, i/s.width, color.RGBA{
			R: uint8(255 * avg.X),
			G: uint8(255 * avg.Y),
			B: uint8(255 * avg.Z),
			A: 255,
		})
	}
	return img
}

// Close releases the session's worker pool. The session cannot render
// after closing; buffers remain readable.
func (s *Session) Close() {
	s.pool.Stop()
}

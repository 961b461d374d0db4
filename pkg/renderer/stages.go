package renderer

import (
	"sort"
	"time"

	"github.com/solemnwind/go-wavefront-pathtracer/pkg/core"
	"github.com/solemnwind/go-wavefront-pathtracer/pkg/material"
)

// white is the initial path throughput
var white = core.NewVec3(1, 1, 1)

// RenderIteration runs one full camera-to-image pass: ray generation, the
// depth loop of intersect/compact/shade, and final accumulation. Each stage
// is a parallel batch pass with a full barrier between stages. The result
// is one more noisy sample per pixel folded into the accumulation buffer.
func (s *Session) RenderIteration() IterationStats {
	start := time.Now()
	iteration := s.iterations

	stats := IterationStats{
		Iteration:   iteration,
		ActivePaths: make([]int, 0, s.config.TraceDepth),
	}

	s.generateRays(iteration)

	if s.config.MotionBlur {
		s.updateGeometry(iteration)
	}

	active := len(s.paths)
	for depth := 0; depth < s.config.TraceDepth && active > 0; depth++ {
		s.computeIntersections(active)
		active = s.compactPaths(active)
		if active == 0 {
			break
		}
		if s.config.SortByMaterial {
			s.sortByMaterial(active)
		}
		s.shadeMaterials(iteration, depth, active)

		stats.ActivePaths = append(stats.ActivePaths, active)
		stats.DepthsRun++
	}

	for i := 0; i < active; i++ {
		if s.paths[i].Terminated() {
			stats.TerminatedPaths++
		}
	}

	s.finalGather(active)

	s.iterations++
	stats.Duration = time.Since(start)
	return stats
}

// generateRays maps every pixel to an initial path: a camera ray, white
// throughput, and a full bounce budget. This stage is total; it has no
// failure modes.
func (s *Session) generateRays(iteration int) {
	s.pool.Run(len(s.paths), func(start, end int) {
		for i := start; i < end; i++ {
			// Ray generation draws from the depth slot one past the
			// shading depths so jitter and lens samples never alias with
			// scattering decisions
			sampler := core.NewPathSampler(iteration, i, s.config.TraceDepth)
			s.paths[i] = PathSegment{
				Ray:              s.camera.GenerateRay(i, sampler, s.config.Antialiasing),
				Throughput:       white,
				PixelIndex:       i,
				RemainingBounces: s.config.TraceDepth,
			}
		}
	})
}

// updateGeometry perturbs each primitive to a random time within the
// exposure window, once per iteration before the depth loop, so all bounces
// of one image sample see a consistent geometry state
func (s *Session) updateGeometry(iteration int) {
	s.pool.Run(len(s.geometry), func(start, end int) {
		for i := start; i < end; i++ {
			sampler := core.NewPathSampler(iteration, i, s.config.TraceDepth+1)
			s.geometry[i].Animate(sampler.Range(0, s.exposure))
		}
	})
}

// computeIntersections finds the nearest hit per active path by testing
// every primitive in scene order. Strictly nearest wins; ties keep the
// first primitive encountered. Geometry and paths are read-only here; only
// intersection records are written.
func (s *Session) computeIntersections(active int) {
	s.pool.Run(active, func(start, end int) {
		for i := start; i < end; i++ {
			ray := s.paths[i].Ray

			nearest := Intersection{T: -1}
			for _, prim := range s.geometry {
				hit := prim.Intersect(ray)
				if hit.T < 0 {
					continue
				}
				if !nearest.Hit() || hit.T < nearest.T {
					nearest = Intersection{
						T:          hit.T,
						Normal:     hit.Normal,
						MaterialID: prim.MaterialID,
						Outside:    hit.Outside,
					}
				}
			}
			s.isects[i] = nearest
		}
	})
}

// compactPaths removes every path with no intersection from the active set,
// preserving the relative order of survivors. The path and intersection
// arrays are compacted together in a single stable pass from a single
// predicate, so they can never fall out of alignment. Returns the new
// active count, which is always <= the previous one.
func (s *Session) compactPaths(active int) int {
	kept := 0
	for i := 0; i < active; i++ {
		if !s.isects[i].Hit() {
			continue
		}
		if kept != i {
			s.paths[kept] = s.paths[i]
			s.isects[kept] = s.isects[i]
		}
		kept++
	}
	return kept
}

// sortByMaterial stably reorders the surviving (path, intersection) pairs
// by material identifier to improve shading locality. Paths carry their
// pixel index and samplers key off it, so this reordering never changes
// the rendered result.
func (s *Session) sortByMaterial(active int) {
	sort.Stable(byMaterial{paths: s.paths[:active], isects: s.isects[:active]})
}

// byMaterial sorts the two stage arrays in lockstep
type byMaterial struct {
	paths  []PathSegment
	isects []Intersection
}

func (b byMaterial) Len() int           { return len(b.paths) }
func (b byMaterial) Less(i, j int) bool { return b.isects[i].MaterialID < b.isects[j].MaterialID }
func (b byMaterial) Swap(i, j int) {
	b.paths[i], b.paths[j] = b.paths[j], b.paths[i]
	b.isects[i], b.isects[j] = b.isects[j], b.isects[i]
}

// shadeMaterials converts intersections into updated path state: emissive
// hits terminate the path with its light contribution, everything else
// scatters a new ray and attenuates the throughput. Already-terminated
// paths are skipped.
func (s *Session) shadeMaterials(iteration, depth, active int) {
	s.pool.Run(active, func(start, end int) {
		for i := start; i < end; i++ {
			path := &s.paths[i]
			if path.Terminated() {
				continue
			}

			isect := s.isects[i]
			mat := s.materials[isect.MaterialID]

			if mat.IsEmissive() {
				path.Throughput = path.Throughput.MultiplyVec(mat.Emission())
				path.RemainingBounces = 0
				continue
			}

			// Samplers key off the pixel index, not the array index, so
			// compaction and material sorting cannot change the stream a
			// logical path sees
			sampler := core.NewPathSampler(iteration, path.PixelIndex, depth)
			effectiveIOR, effectiveColor := mat.ResolveChannel(iteration)

			hitPoint := path.Ray.At(isect.T)
			scattered, attenuation := mat.Scatter(path.Ray, materialHit(hitPoint, isect), effectiveIOR, effectiveColor, sampler)

			path.Ray = scattered
			path.Throughput = path.Throughput.MultiplyVec(attenuation)
			path.RemainingBounces--
		}
	})
}

func materialHit(point core.Vec3, isect Intersection) material.SurfaceHit {
	return material.SurfaceHit{Point: point, Normal: isect.Normal, Outside: isect.Outside}
}

// finalGather sums every surviving path's throughput into the accumulation
// buffer at its originating pixel. Pixel indices are unique within an
// iteration, so the parallel writes never collide. Paths compacted away
// earlier contribute nothing, which is the implicit black of a miss.
func (s *Session) finalGather(active int) {
	s.pool.Run(active, func(start, end int) {
		for i := start; i < end; i++ {
			path := s.paths[i]
			s.accum[path.PixelIndex] = s.accum[path.PixelIndex].Add(path.Throughput)
		}
	})
}

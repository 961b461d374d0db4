package renderer

import (
	"context"
	"image"
	"time"
)

// FrameResult carries one completed iteration's frame to the display
// collaborator
type FrameResult struct {
	Iteration int // Completed iterations including this one
	Image     *image.RGBA
	Stats     IterationStats
	IsLast    bool
}

// RenderOptions configures the progressive render loop
type RenderOptions struct {
	Iterations int // Total iterations to run (including any resumed ones)
	LogEvery   int // Log progress every N iterations (0 = no progress logs)
}

// Render runs iterations until the target count is reached, emitting one
// frame per iteration. An iteration always runs to completion; cancellation
// is only observed between iterations. The caller should read from the
// returned channels in separate goroutines.
func (s *Session) Render(ctx context.Context, options RenderOptions) (<-chan FrameResult, <-chan error) {
	frameChan := make(chan FrameResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(frameChan)
		defer close(errChan)

		target := options.Iterations
		if target <= s.iterations {
			return
		}

		s.logger.Printf("Rendering %d iterations at %dx%d (depth %d, %d workers)\n",
			target-s.iterations, s.width, s.height, s.config.TraceDepth, s.pool.NumWorkers())
		start := time.Now()

		for s.iterations < target {
			select {
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			default:
			}

			stats := s.RenderIteration()

			if options.LogEvery > 0 && s.iterations%options.LogEvery == 0 {
				s.logger.Printf("Iteration %d/%d completed in %v (%d paths reached accumulation)\n",
					s.iterations, target, stats.Duration, stats.FinalActive())
			}

			result := FrameResult{
				Iteration: s.iterations,
				Image:     s.Frame(),
				Stats:     stats,
				IsLast:    s.iterations == target,
			}

			select {
			case frameChan <- result:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}

		s.logger.Printf("Render completed in %v\n", time.Since(start))
	}()

	return frameChan, errChan
}

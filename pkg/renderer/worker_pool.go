package renderer

import (
	"runtime"
	"sync"
)

// minChunkSize keeps per-task overhead small for narrow images
const minChunkSize = 64

// rangeTask is one contiguous slice of a stage pass
type rangeTask struct {
	start, end int
	fn         func(start, end int)
	done       *sync.WaitGroup
}

// WorkerPool executes data-parallel stage passes over index ranges. Every
// Run call is a full barrier: it returns only after all chunks of the pass
// have been processed, so the next stage can safely read this stage's
// output. Workers are long-lived and shared across all stages of a session.
type WorkerPool struct {
	numWorkers int
	tasks      chan rangeTask
	wg         sync.WaitGroup
}

// NewWorkerPool creates a pool with the specified number of workers
// (0 = use CPU count) and starts them
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		numWorkers: numWorkers,
		tasks:      make(chan rangeTask, numWorkers*4),
	}
	for i := 0; i < numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
	return wp
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		task.fn(task.start, task.end)
		task.done.Done()
	}
}

// Run splits [0, n) into chunks, processes them on the pool workers, and
// blocks until every chunk has completed
func (wp *WorkerPool) Run(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	chunk := (n + wp.numWorkers*4 - 1) / (wp.numWorkers * 4)
	if chunk < minChunkSize {
		chunk = minChunkSize
	}

	var done sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		done.Add(1)
		wp.tasks <- rangeTask{start: start, end: end, fn: fn, done: &done}
	}
	done.Wait()
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Stop shuts down all workers. The pool cannot be reused afterwards.
func (wp *WorkerPool) Stop() {
	close(wp.tasks)
	wp.wg.Wait()
}

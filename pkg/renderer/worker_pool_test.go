package renderer

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPool_CoversEveryIndexOnce(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Stop()

	n := 10_000
	counts := make([]int32, n)
	pool.Run(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&counts[i], 1)
		}
	})

	for i, c := range counts {
		if c != 1 {
			t.Fatalf("Index %d processed %d times", i, c)
		}
	}
}

func TestWorkerPool_RunIsABarrier(t *testing.T) {
	pool := NewWorkerPool(8)
	defer pool.Stop()

	// The second pass reads what the first pass wrote; the barrier between
	// Run calls makes this safe
	n := 5000
	values := make([]int, n)
	pool.Run(n, func(start, end int) {
		for i := start; i < end; i++ {
			values[i] = i * 2
		}
	})

	var sum int64
	pool.Run(n, func(start, end int) {
		local := int64(0)
		for i := start; i < end; i++ {
			local += int64(values[i])
		}
		atomic.AddInt64(&sum, local)
	})

	expected := int64(n * (n - 1)) // sum of 2i for i in [0, n)
	if sum != expected {
		t.Errorf("Expected sum %d, got %d", expected, sum)
	}
}

func TestWorkerPool_EmptyAndSmallRuns(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Stop()

	ran := false
	pool.Run(0, func(start, end int) { ran = true })
	if ran {
		t.Error("Run(0) should not invoke the pass function")
	}

	count := 0
	pool.Run(1, func(start, end int) { count += end - start })
	if count != 1 {
		t.Errorf("Run(1) should process exactly one index, got %d", count)
	}
}

func TestWorkerPool_DefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Stop()
	if pool.NumWorkers() <= 0 {
		t.Errorf("Expected positive worker count, got %d", pool.NumWorkers())
	}
}

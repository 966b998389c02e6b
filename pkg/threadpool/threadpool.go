// Package threadpool holds the one-shot, process-wide worker-pool
// configuration: the maximum number of parallel workers used by the Runner
// and by kernels that parallelize their inner loops (Non-Overlapping
// Template Matching's per-template fan-out) may be set exactly once,
// strictly before any kernel runs.
package threadpool

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/JekaMas/workerpool"

	"github.com/jihwankim/nist-sts/pkg/errctx"
)

var (
	mu         sync.Mutex
	pool       *workerpool.WorkerPool
	maxWorkers int
	maxSet     bool
	anyRunYet  bool
)

// SetMaxWorkers configures the maximum number of parallel workers used by
// the runner and by parallelizable kernels. It may be called at most once,
// and only before any kernel has run; any other call fails with
// ErrAlreadySet and records a SetMaxThreads error.
func SetMaxWorkers(n int) error {
	if n < 1 {
		errctx.Set(errctx.SetMaxThreads, fmt.Sprintf("threadpool: max workers must be >= 1, got %d", n))
		return fmt.Errorf("threadpool: max workers must be >= 1, got %d", n)
	}

	mu.Lock()
	defer mu.Unlock()

	if maxSet || anyRunYet {
		errctx.Set(errctx.SetMaxThreads, "threadpool: max workers already configured or pool already in use")
		return ErrAlreadySet
	}
	pool = workerpool.New(n)
	maxWorkers = n
	maxSet = true
	return nil
}

// ErrAlreadySet is returned when SetMaxWorkers is called a second time, or
// after the pool has already dispatched work.
var ErrAlreadySet = fmt.Errorf("threadpool: max workers already configured")

// Pool returns the process-wide worker pool, lazily creating it with a
// platform default (GOMAXPROCS) if SetMaxWorkers was never called. Every
// call marks the pool as "in use", locking out any later SetMaxWorkers.
func Pool() *workerpool.WorkerPool {
	mu.Lock()
	defer mu.Unlock()

	anyRunYet = true
	if pool == nil {
		pool = workerpool.New(runtime.GOMAXPROCS(0))
		maxWorkers = runtime.GOMAXPROCS(0)
	}
	return pool
}

// MaxWorkers returns the configured worker cap, lazily applying the
// platform default when SetMaxWorkers was never called. Kernels that fan
// out their own inner loops (Non-Overlapping Template's per-template scan)
// bound themselves with this value instead of submitting nested tasks to
// the pool their own kernel invocation already occupies; nesting would
// deadlock a single-worker pool. Like Pool, calling it locks out any later
// SetMaxWorkers.
func MaxWorkers() int {
	mu.Lock()
	defer mu.Unlock()

	anyRunYet = true
	if maxWorkers == 0 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}
	return maxWorkers
}

// reset is a test-only hook that undoes process-wide configuration so unit
// tests can exercise the one-shot discipline independently of each other.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	if pool != nil {
		pool.StopWait()
	}
	pool = nil
	maxWorkers = 0
	maxSet = false
	anyRunYet = false
}

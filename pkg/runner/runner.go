package runner

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/JekaMas/workerpool"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/errctx"
	"github.com/jihwankim/nist-sts/pkg/kernels"
	"github.com/jihwankim/nist-sts/pkg/result"
	"github.com/jihwankim/nist-sts/pkg/threadpool"
)

// Status is the tri-state code every dispatch operation returns.
type Status int

const (
	// StatusOK means every requested kernel succeeded.
	StatusOK Status = 0
	// StatusInvalidTestList means the requested test list contained an
	// unknown or duplicate TestKind; nothing ran.
	StatusInvalidTestList Status = 1
	// StatusPartialFailure means at least one kernel failed; surviving
	// results are still available via TakeResult.
	StatusPartialFailure Status = 2
)

// ErrTestWasNotRun is returned by TakeResult for a test that was never
// dispatched, or whose result was already taken.
var ErrTestWasNotRun = fmt.Errorf("runner: test was not run")

// Runner holds a per-test result slot, populated by dispatch operations
// and drained on demand by TakeResult.
type Runner struct {
	mu      sync.Mutex
	results map[kernels.TestKind][]result.TestResult
}

// New returns an empty Runner.
func New() *Runner {
	return &Runner{results: make(map[kernels.TestKind][]result.TestResult)}
}

// RunAllAutomatic runs all fifteen tests with default arguments.
func (r *Runner) RunAllAutomatic(seq *bitseq.Sequence) Status {
	return r.RunAllTests(seq, DefaultBundle(seq.Len()))
}

// RunAutomatic runs the named subset of tests with default arguments.
func (r *Runner) RunAutomatic(seq *bitseq.Sequence, tests []kernels.TestKind) Status {
	return r.RunTests(seq, tests, DefaultBundle(seq.Len()))
}

// RunAllTests runs all fifteen tests with the supplied argument bundle.
func (r *Runner) RunAllTests(seq *bitseq.Sequence, bundle Bundle) Status {
	return r.RunTests(seq, kernels.AllTestKinds(), bundle)
}

// RunTests runs the requested subset of tests with the supplied bundle.
// The list is validated before any kernel runs: an unknown or duplicate
// TestKind aborts the whole dispatch with StatusInvalidTestList.
func (r *Runner) RunTests(seq *bitseq.Sequence, tests []kernels.TestKind, bundle Bundle) Status {
	seen := make(map[kernels.TestKind]bool, len(tests))
	for _, k := range tests {
		if k < 0 || int(k) >= len(kernels.AllTestKinds()) {
			errctx.Set(errctx.InvalidTest, fmt.Sprintf("runner: unknown TestKind %v", k))
			return StatusInvalidTestList
		}
		if seen[k] {
			errctx.Set(errctx.DuplicateTest, fmt.Sprintf("runner: duplicate TestKind %v", k))
			return StatusInvalidTestList
		}
		seen[k] = true
	}

	type outcome struct {
		kind    kernels.TestKind
		results []result.TestResult
		err     error
	}

	outcomes := make([]outcome, len(tests))
	pool := threadpool.Pool()
	var wg sync.WaitGroup
	wg.Add(len(tests))

	for i, k := range tests {
		i, k := i, k
		pool.Submit(context.Background(), func() error {
			defer wg.Done()
			res, err := dispatch(seq, k, bundle)
			outcomes[i] = outcome{kind: k, results: res, err: err}
			return nil
		}, workerpool.NoTimeout)
	}
	wg.Wait()

	var failed []string
	r.mu.Lock()
	for _, o := range outcomes {
		if o.err != nil {
			failed = append(failed, o.kind.String())
			continue
		}
		r.results[o.kind] = o.results
	}
	r.mu.Unlock()

	if len(failed) > 0 {
		// The per-kernel codes were recorded on the worker goroutines'
		// slots; mirror the aggregate outcome onto the caller's own slot.
		errctx.Set(errctx.TestFailed, fmt.Sprintf("runner: tests failed: %s", strings.Join(failed, ", ")))
		return StatusPartialFailure
	}
	return StatusOK
}

// TakeResult removes and returns the result slot for test. A second call
// for the same test, or a call for a test that never ran, returns
// ErrTestWasNotRun.
func (r *Runner) TakeResult(test kernels.TestKind) ([]result.TestResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.results[test]
	if !ok {
		errctx.Set(errctx.TestWasNotRun, fmt.Sprintf("runner: %v was not run", test))
		return nil, ErrTestWasNotRun
	}
	delete(r.results, test)
	return res, nil
}

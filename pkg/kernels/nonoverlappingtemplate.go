package kernels

import (
	"math"
	"sync"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/errctx"
	"github.com/jihwankim/nist-sts/pkg/numeric"
	"github.com/jihwankim/nist-sts/pkg/result"
	"github.com/jihwankim/nist-sts/pkg/testargs"
	"github.com/jihwankim/nist-sts/pkg/threadpool"
)

// aperiodicTemplates enumerates every aperiodic bit pattern of length m, in
// ascending template-integer order. A template is aperiodic iff no
// non-trivial proper prefix equals the corresponding suffix.
func aperiodicTemplates(m int) [][]int {
	var out [][]int
	total := 1 << uint(m)
	for v := 0; v < total; v++ {
		tmpl := make([]int, m)
		for i := 0; i < m; i++ {
			tmpl[m-1-i] = (v >> uint(i)) & 1
		}
		if isAperiodic(tmpl) {
			out = append(out, tmpl)
		}
	}
	return out
}

func isAperiodic(tmpl []int) bool {
	m := len(tmpl)
	for k := 1; k < m; k++ {
		match := true
		for i := 0; i < k; i++ {
			if tmpl[i] != tmpl[m-k+i] {
				match = false
				break
			}
		}
		if match {
			return false
		}
	}
	return true
}

func countNonOverlapping(seq *bitseq.Sequence, base, blockLen int, tmpl []int) int {
	m := len(tmpl)
	count := 0
	i := 0
	for i <= blockLen-m {
		match := true
		for j := 0; j < m; j++ {
			if seq.Bit(base+i+j) != tmpl[j] {
				match = false
				break
			}
		}
		if match {
			count++
			i += m
		} else {
			i++
		}
	}
	return count
}

// RunNonOverlappingTemplate scans each block for occurrences of every
// aperiodic template of length m, matched without overlap, and emits one
// p-value per template. Each template is an independent pass over the same
// read-only sequence, so templates fan out across their own goroutines,
// bounded by the configured worker cap. The kernel itself already occupies
// a pool worker when dispatched by the runner, so it must not submit
// nested tasks back to that pool.
func RunNonOverlappingTemplate(seq *bitseq.Sequence, args testargs.NonOverlappingTemplate) ([]result.TestResult, error) {
	n := seq.Len()
	m := args.M
	numBlocks := args.N
	blockLen := n / numBlocks
	if blockLen <= m {
		return nil, fail(errctx.InvalidParameter, "NonOverlappingTemplate: block length %d too short for m=%d", blockLen, m)
	}

	templates := aperiodicTemplates(m)
	results := make([]result.TestResult, len(templates))
	errs := make([]error, len(templates))

	sem := make(chan struct{}, threadpool.MaxWorkers())
	var wg sync.WaitGroup
	wg.Add(len(templates))

	for idx, tmpl := range templates {
		idx, tmpl := idx, tmpl
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			results[idx], errs[idx] = nonOverlappingTemplateOne(seq, blockLen, numBlocks, m, tmpl)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func nonOverlappingTemplateOne(seq *bitseq.Sequence, blockLen, numBlocks, m int, tmpl []int) (result.TestResult, error) {
	mu := float64(blockLen-m+1) / math.Pow(2, float64(m))
	sigma2 := float64(blockLen) * (1.0/math.Pow(2, float64(m)) - float64(2*m-1)/math.Pow(2, float64(2*m)))

	chi2 := 0.0
	for b := 0; b < numBlocks; b++ {
		w := countNonOverlapping(seq, b*blockLen, blockLen, tmpl)
		diff := float64(w) - mu
		chi2 += diff * diff / sigma2
	}

	p, err := numeric.Igamc(float64(numBlocks)/2.0, chi2/2.0)
	if err != nil {
		return result.TestResult{}, fail(errctx.GammaFunctionFailed, "NonOverlappingTemplate: %v", err)
	}
	if err := checkFinite("NonOverlappingTemplate", p); err != nil {
		return result.TestResult{}, err
	}
	return result.New(p), nil
}

package kernels

import (
	"fmt"
	"math"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/errctx"
	"github.com/jihwankim/nist-sts/pkg/numeric"
	"github.com/jihwankim/nist-sts/pkg/result"
)

const excursionsMinN = 1000000

var excursionsStates = []int{-4, -3, -2, -1, 1, 2, 3, 4}

// excursionsPi is the NIST reference probability matrix pi[|x|][k] for
// k in {0,1,2,3,4,>=5}, indexed 1..4 (row 0 is unused).
var excursionsPi = [5][6]float64{
	{},
	{0.5000000000, 0.25000000000, 0.12500000000, 0.06250000000, 0.03125000000, 0.0312500000},
	{0.7500000000, 0.06250000000, 0.04687500000, 0.03515625000, 0.02636718750, 0.0791015625},
	{0.8333333333, 0.02777777778, 0.02314814815, 0.01929012346, 0.01607510288, 0.0803755143},
	{0.8750000000, 0.01562500000, 0.01367187500, 0.01196289063, 0.01046752930, 0.0732727051},
}

// cumulativeWalk builds the partial-sum random walk S_0=0, S_k = S_{k-1} +
// (2*bit_k - 1), shared by Random Excursions and its Variant.
func cumulativeWalk(seq *bitseq.Sequence) []int {
	n := seq.Len()
	s := make([]int, n+1)
	for i := 0; i < n; i++ {
		if seq.Bit(i) == 1 {
			s[i+1] = s[i] + 1
		} else {
			s[i+1] = s[i] - 1
		}
	}
	return s
}

// cycleBoundaries returns the indices into the walk (1-based) at which a
// cycle ends; consecutive boundaries delimit one cycle. A cycle normally
// ends at a return to zero, but a walk that finishes away from zero still
// closes its last cycle at the final position.
func cycleBoundaries(s []int) []int {
	var bounds []int
	for i := 1; i < len(s); i++ {
		if s[i] == 0 {
			bounds = append(bounds, i)
		}
	}
	last := len(s) - 1
	if last >= 1 && s[last] != 0 {
		bounds = append(bounds, last)
	}
	return bounds
}

// RunExcursions examines the cumulative-sum random walk's cycles (segments
// between successive returns to zero) and checks that the distribution of
// per-cycle visit counts to each small nonzero state matches theory.
func RunExcursions(seq *bitseq.Sequence) ([]result.TestResult, error) {
	n := seq.Len()
	if n < excursionsMinN {
		return nil, fail(errctx.InvalidParameter, "Excursions: n=%d below minimum %d", n, excursionsMinN)
	}

	s := cumulativeWalk(seq)
	bounds := cycleBoundaries(s)
	j := len(bounds)

	minCycles := 0.005 * math.Sqrt(float64(n))
	if minCycles < 500 {
		minCycles = 500
	}

	if float64(j) < minCycles {
		results := make([]result.TestResult, len(excursionsStates))
		for i, x := range excursionsStates {
			results[i] = result.WithComment(0.0, fmt.Sprintf("x = %+d (insufficient cycles)", x))
		}
		return results, nil
	}

	results := make([]result.TestResult, len(excursionsStates))
	for xi, x := range excursionsStates {
		ax := x
		if ax < 0 {
			ax = -ax
		}
		buckets := make([]int, 6)
		cycleStart := 0
		for _, end := range bounds {
			visits := 0
			for i := cycleStart + 1; i <= end; i++ {
				if s[i] == x {
					visits++
				}
			}
			if visits > 5 {
				visits = 5
			}
			buckets[visits]++
			cycleStart = end
		}

		chi2 := 0.0
		for k := 0; k < 6; k++ {
			expected := float64(j) * excursionsPi[ax][k]
			diff := float64(buckets[k]) - expected
			chi2 += diff * diff / expected
		}

		p, err := numeric.Igamc(2.5, chi2/2.0)
		if err != nil {
			return nil, fail(errctx.GammaFunctionFailed, "Excursions: %v", err)
		}
		if err := checkFinite("Excursions", p); err != nil {
			return nil, err
		}
		results[xi] = result.WithComment(p, fmt.Sprintf("x = %+d", x))
	}
	return results, nil
}

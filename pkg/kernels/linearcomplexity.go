package kernels

import (
	"math"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/errctx"
	"github.com/jihwankim/nist-sts/pkg/numeric"
	"github.com/jihwankim/nist-sts/pkg/result"
	"github.com/jihwankim/nist-sts/pkg/testargs"
)

const linearComplexityMinN = 1000000

var linearComplexityPi = []float64{0.010417, 0.031250, 0.125000, 0.500000, 0.250000, 0.062500, 0.020833}

// linearComplexityBucket maps T_i into one of the 7 canonical bins with
// boundaries [-inf,-2.5,-1.5,-0.5,0.5,1.5,2.5,+inf].
func linearComplexityBucket(t float64) int {
	switch {
	case t <= -2.5:
		return 0
	case t <= -1.5:
		return 1
	case t <= -0.5:
		return 2
	case t <= 0.5:
		return 3
	case t <= 1.5:
		return 4
	case t <= 2.5:
		return 5
	default:
		return 6
	}
}

// RunLinearComplexity computes the Berlekamp-Massey linear complexity of
// each M-bit block and compares the distribution of deviations from the
// expected complexity against the NIST reference bucket probabilities.
func RunLinearComplexity(seq *bitseq.Sequence, args testargs.LinearComplexity) (result.TestResult, error) {
	n := seq.Len()
	if n < linearComplexityMinN {
		return result.TestResult{}, fail(errctx.InvalidParameter, "LinearComplexity: n=%d below minimum %d", n, linearComplexityMinN)
	}

	m := args.M
	numBlocks := n / m
	if numBlocks == 0 {
		return result.TestResult{}, fail(errctx.InvalidParameter, "LinearComplexity: M=%d too large for n=%d", m, n)
	}

	mu := float64(m)/2.0 + (9.0+signPow(m+1))/36.0 - (float64(m)/3.0+2.0/9.0)/math.Pow(2, float64(m))

	counts := make([]int, 7)
	bits := make([]int, m)
	for b := 0; b < numBlocks; b++ {
		base := b * m
		for i := 0; i < m; i++ {
			bits[i] = seq.Bit(base + i)
		}
		l := numeric.BerlekampMassey(bits)
		t := signPow(m)*(float64(l)-mu) + 2.0/9.0
		counts[linearComplexityBucket(t)]++
	}

	chi2 := 0.0
	for i, c := range counts {
		expected := float64(numBlocks) * linearComplexityPi[i]
		diff := float64(c) - expected
		chi2 += diff * diff / expected
	}

	p, err := numeric.Igamc(3.0, chi2/2.0)
	if err != nil {
		return result.TestResult{}, fail(errctx.GammaFunctionFailed, "LinearComplexity: %v", err)
	}
	if err := checkFinite("LinearComplexity", p); err != nil {
		return result.TestResult{}, err
	}
	return result.New(p), nil
}

func signPow(m int) float64 {
	if m%2 == 0 {
		return 1.0
	}
	return -1.0
}

package kernels

import (
	"math"
	"math/bits"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/errctx"
	"github.com/jihwankim/nist-sts/pkg/numeric"
	"github.com/jihwankim/nist-sts/pkg/result"
	"github.com/jihwankim/nist-sts/pkg/testargs"
)

// RunApproximateEntropy compares the frequency of overlapping M-bit
// patterns against (M+1)-bit patterns: a regular, non-random source will
// show excess predictability across the extra bit of context.
func RunApproximateEntropy(seq *bitseq.Sequence, args testargs.ApproximateEntropy) (result.TestResult, error) {
	n := seq.Len()
	if err := args.CheckRuntime(n); err != nil {
		return result.TestResult{}, fail(errctx.InvalidParameter, "ApproximateEntropy: %v", err)
	}
	m := args.M
	if m+1 >= bits.UintSize-2 {
		return result.TestResult{}, fail(errctx.Overflow, "ApproximateEntropy: 2^%d pattern table overflows a machine integer", m+1)
	}

	phiM := phi(seq, n, m)
	phiM1 := phi(seq, n, m+1)

	chi2 := 2.0 * float64(n) * (math.Log(2) - (phiM - phiM1))

	p, err := numeric.Igamc(math.Pow(2, float64(m-1)), chi2/2.0)
	if err != nil {
		return result.TestResult{}, fail(errctx.GammaFunctionFailed, "ApproximateEntropy: %v", err)
	}
	if err := checkFinite("ApproximateEntropy", p); err != nil {
		return result.TestResult{}, err
	}
	return result.New(p), nil
}

func phi(seq *bitseq.Sequence, n, k int) float64 {
	counts := circularPatternFrequencies(seq, k)
	sum := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		freq := float64(c) / float64(n)
		sum += freq * math.Log(freq)
	}
	return sum
}

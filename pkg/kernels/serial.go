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

// RunSerial measures the frequency of every possible overlapping k-bit
// pattern for k = M, M-1, M-2 and compares successive differences against
// a uniform distribution, emitting the first- and second-order psi-squared
// derivatives as two separate p-values.
func RunSerial(seq *bitseq.Sequence, args testargs.Serial) ([]result.TestResult, error) {
	n := seq.Len()
	if err := args.CheckRuntime(n); err != nil {
		return nil, fail(errctx.InvalidParameter, "Serial: %v", err)
	}
	m := args.M
	if m < 2 {
		return nil, fail(errctx.InvalidParameter, "Serial: M=%d must be >= 2", m)
	}
	if m >= bits.UintSize-2 {
		return nil, fail(errctx.Overflow, "Serial: 2^%d pattern table overflows a machine integer", m)
	}

	psiM := psiSquared(seq, n, m)
	psiM1 := psiSquared(seq, n, m-1)
	psiM2 := psiSquared(seq, n, m-2)

	gradPsi := psiM - psiM1
	grad2Psi := psiM - 2*psiM1 + psiM2

	p1, err := numeric.Igamc(math.Pow(2, float64(m-2)), gradPsi/2.0)
	if err != nil {
		return nil, fail(errctx.GammaFunctionFailed, "Serial: %v", err)
	}
	p2, err := numeric.Igamc(math.Pow(2, float64(m-3)), grad2Psi/2.0)
	if err != nil {
		return nil, fail(errctx.GammaFunctionFailed, "Serial: %v", err)
	}

	if err := checkFinite("Serial", p1); err != nil {
		return nil, err
	}
	if err := checkFinite("Serial", p2); err != nil {
		return nil, err
	}

	return []result.TestResult{result.New(p1), result.New(p2)}, nil
}

func psiSquared(seq *bitseq.Sequence, n, k int) float64 {
	if k <= 0 {
		return 0
	}
	counts := circularPatternFrequencies(seq, k)
	return math.Pow(2, float64(k))/float64(n)*sumSquares(counts) - float64(n)
}

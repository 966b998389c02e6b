package kernels

import (
	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/errctx"
	"github.com/jihwankim/nist-sts/pkg/numeric"
	"github.com/jihwankim/nist-sts/pkg/result"
	"github.com/jihwankim/nist-sts/pkg/testargs"
)

// RunBlockFrequency partitions the sequence into blocks of length M and
// checks that the proportion of ones within each block is close to 0.5.
func RunBlockFrequency(seq *bitseq.Sequence, args testargs.FrequencyBlock) (result.TestResult, error) {
	n := seq.Len()
	m := args.M
	if m < 1 || m > n {
		return result.TestResult{}, fail(errctx.InvalidParameter, "BlockFrequency: M=%d invalid for n=%d", m, n)
	}

	blocks := n / m
	if blocks == 0 {
		return result.TestResult{}, fail(errctx.InvalidParameter, "BlockFrequency: no complete blocks for M=%d n=%d", m, n)
	}

	chi2 := 0.0
	for b := 0; b < blocks; b++ {
		ones := 0
		base := b * m
		for i := 0; i < m; i++ {
			if seq.Bit(base+i) == 1 {
				ones++
			}
		}
		pi := float64(ones) / float64(m)
		chi2 += (pi - 0.5) * (pi - 0.5)
	}
	chi2 *= 4.0 * float64(m)

	p, err := numeric.Igamc(float64(blocks)/2.0, chi2/2.0)
	if err != nil {
		return result.TestResult{}, fail(errctx.GammaFunctionFailed, "BlockFrequency: %v", err)
	}
	if err := checkFinite("BlockFrequency", p); err != nil {
		return result.TestResult{}, err
	}
	return result.New(p), nil
}

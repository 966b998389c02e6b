package kernels

import (
	"math"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/errctx"
	"github.com/jihwankim/nist-sts/pkg/numeric"
	"github.com/jihwankim/nist-sts/pkg/result"
)

// RunFrequency is the monobit test: it checks that the proportion of ones
// and zeros in the sequence is close to one half.
func RunFrequency(seq *bitseq.Sequence) (result.TestResult, error) {
	n := seq.Len()
	if n == 0 {
		return result.TestResult{}, fail(errctx.InvalidParameter, "Frequency: empty sequence")
	}

	sum := 0
	for i := 0; i < n; i++ {
		if seq.Bit(i) == 1 {
			sum++
		} else {
			sum--
		}
	}

	sObs := math.Abs(float64(sum)) / math.Sqrt(float64(n))
	p := numeric.Erfc(sObs / math.Sqrt2)
	if err := checkFinite("Frequency", p); err != nil {
		return result.TestResult{}, err
	}
	return result.New(p), nil
}

package kernels

import (
	"math"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/errctx"
	"github.com/jihwankim/nist-sts/pkg/numeric"
	"github.com/jihwankim/nist-sts/pkg/result"
)

const runsMinN = 100

// RunRuns counts the total number of runs in the sequence, where a run is
// an uninterrupted sequence of identical bits. If the proportion of ones
// is too far from one half, the test reports a well-defined p=0 rather
// than attempting the runs statistic on data the pi-estimator already
// rejects.
func RunRuns(seq *bitseq.Sequence) (result.TestResult, error) {
	n := seq.Len()
	if n < runsMinN {
		return result.TestResult{}, fail(errctx.InvalidParameter, "Runs: n=%d below minimum %d", n, runsMinN)
	}

	ones := seq.Ones()
	pi := float64(ones) / float64(n)

	if math.Abs(pi-0.5) >= 2.0/math.Sqrt(float64(n)) {
		return result.WithComment(0.0, "pi estimator failed"), nil
	}

	vn := 1
	for i := 0; i < n-1; i++ {
		if seq.Bit(i) != seq.Bit(i+1) {
			vn++
		}
	}

	num := math.Abs(float64(vn) - 2.0*float64(n)*pi*(1-pi))
	den := 2.0 * math.Sqrt(2.0*float64(n)) * pi * (1 - pi)
	p := numeric.Erfc(num / den)
	if err := checkFinite("Runs", p); err != nil {
		return result.TestResult{}, err
	}
	return result.New(p), nil
}

package kernels

import (
	"math"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/errctx"
	"github.com/jihwankim/nist-sts/pkg/numeric"
	"github.com/jihwankim/nist-sts/pkg/result"
)

// RunSpectral maps the sequence to +-1, computes its discrete Fourier
// transform, and checks that the proportion of low-magnitude frequency
// components is consistent with a random source (the peaks of a random
// sequence's spectrum should rarely exceed the 95% confidence height).
func RunSpectral(seq *bitseq.Sequence) (result.TestResult, error) {
	n := seq.Len()
	if n == 0 {
		return result.TestResult{}, fail(errctx.InvalidParameter, "Spectral: empty sequence")
	}

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		if seq.Bit(i) == 1 {
			x[i] = 1
		} else {
			x[i] = -1
		}
	}

	mags := numeric.SpectralMagnitudes(x)
	threshold := numeric.PeakThreshold(n)

	under := 0
	for _, m := range mags {
		if m < threshold {
			under++
		}
	}

	n0 := 0.95 * float64(n) / 2.0
	d := (float64(under) - n0) / math.Sqrt(float64(n)*0.95*0.05/4.0)
	p := numeric.Erfc(math.Abs(d) / math.Sqrt2)
	if err := checkFinite("Spectral", p); err != nil {
		return result.TestResult{}, err
	}
	return result.New(p), nil
}

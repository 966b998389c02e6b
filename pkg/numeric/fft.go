package numeric

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// SpectralMagnitudes returns the modulus of the discrete Fourier transform
// of a real-valued sequence, truncated to the first n/2 coefficients: the
// half of the spectrum the Discrete Fourier Transform (Spectral) kernel
// tests against its 95% peak-height threshold.
//
// It wires gonum's real-input FFT rather than hand-rolling a transform:
// the sequence here is already ±1-valued floats, not bits, so there is no
// domain-specific shortcut a bespoke implementation would gain over a
// well-tested library one.
func SpectralMagnitudes(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}

	plan := fourier.NewFFT(n)
	coeff := plan.Coefficients(nil, x)

	half := n / 2
	mags := make([]float64, half)
	for i := 0; i < half && i < len(coeff); i++ {
		mags[i] = cmplx.Abs(coeff[i])
	}
	return mags
}

// PeakThreshold returns the 95% confidence height threshold T used by the
// Spectral kernel: T = sqrt(log(1/0.05) * n).
func PeakThreshold(n int) float64 {
	return math.Sqrt(math.Log(1.0/0.05) * float64(n))
}

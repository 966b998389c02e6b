// Package numeric collects the small shared numeric toolbox the test
// kernels build on: erf/erfc, the regularized incomplete gamma function,
// Berlekamp-Massey LFSR synthesis, GF(2) matrix rank, and a real FFT.
package numeric

import "math"

// Erf is the standard error function, accurate to full float64 precision.
func Erf(x float64) float64 {
	return math.Erf(x)
}

// Erfc is the complementary error function, 1 - Erf(x), computed directly
// (not as a subtraction) to retain precision for large x, exactly what
// math.Erfc already guarantees.
func Erfc(x float64) float64 {
	return math.Erfc(x)
}

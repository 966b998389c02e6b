package testargs

import "fmt"

// LinearComplexity carries the per-block length M.
type LinearComplexity struct {
	M int
}

// NewLinearComplexity validates M in [500,5000] and n/M >= 200.
func NewLinearComplexity(m, n int) (LinearComplexity, error) {
	if m < 500 || m > 5000 {
		return LinearComplexity{}, fmt.Errorf("testargs: LinearComplexity.M must be in [500,5000], got %d", m)
	}
	if n/m < 200 {
		return LinearComplexity{}, fmt.Errorf("testargs: LinearComplexity requires n/M >= 200, got n=%d M=%d", n, m)
	}
	return LinearComplexity{M: m}, nil
}

// AutoLinearComplexity picks the largest M in [500,5000] satisfying
// n/M >= 200, falling back to 500 when n is too short for any valid M.
func AutoLinearComplexity(n int) LinearComplexity {
	m := n / 200
	if m > 5000 {
		m = 5000
	}
	if m < 500 {
		m = 500
	}
	return LinearComplexity{M: m}
}

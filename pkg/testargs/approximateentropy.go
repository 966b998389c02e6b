package testargs

import (
	"fmt"
	"math"
)

// ApproximateEntropy carries the block length M. M and M+1 are both
// exercised by the kernel.
type ApproximateEntropy struct {
	M int
}

// DefaultApproximateEntropy returns M=10.
func DefaultApproximateEntropy() ApproximateEntropy {
	return ApproximateEntropy{M: 10}
}

// NewApproximateEntropy validates the static constraint M >= 2. The
// run-time constraint M < floor(log2(n)) - 5 is checked by CheckRuntime
// once the sequence length is known.
func NewApproximateEntropy(m int) (ApproximateEntropy, error) {
	if m < 2 {
		return ApproximateEntropy{}, fmt.Errorf("testargs: ApproximateEntropy.M must be >= 2, got %d", m)
	}
	return ApproximateEntropy{M: m}, nil
}

// CheckRuntime enforces M < floor(log2(n)) - 5 for a sequence of length n.
func (a ApproximateEntropy) CheckRuntime(n int) error {
	limit := math.Floor(math.Log2(float64(n))) - 5
	if float64(a.M) >= limit {
		return fmt.Errorf("testargs: ApproximateEntropy.M=%d violates M < floor(log2(n))-5 = %v for n=%d", a.M, limit, n)
	}
	return nil
}

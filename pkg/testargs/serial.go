package testargs

import (
	"fmt"
	"math"
)

// Serial carries the block length M used for the Serial test. M itself,
// M-1, and M-2 are all exercised by the kernel.
type Serial struct {
	M int
}

// DefaultSerial returns M=16.
func DefaultSerial() Serial {
	return Serial{M: 16}
}

// NewSerial validates the static constraint M >= 2. The run-time
// constraint M < floor(log2(n)) - 2 is checked by CheckRuntime once the
// sequence length is known.
func NewSerial(m int) (Serial, error) {
	if m < 2 {
		return Serial{}, fmt.Errorf("testargs: Serial.M must be >= 2, got %d", m)
	}
	return Serial{M: m}, nil
}

// CheckRuntime enforces M < floor(log2(n)) - 2 for a sequence of length n.
func (s Serial) CheckRuntime(n int) error {
	limit := math.Floor(math.Log2(float64(n))) - 2
	if float64(s.M) >= limit {
		return fmt.Errorf("testargs: Serial.M=%d violates M < floor(log2(n))-2 = %v for n=%d", s.M, limit, n)
	}
	return nil
}

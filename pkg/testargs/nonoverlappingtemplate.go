package testargs

import "fmt"

// NonOverlappingTemplate carries the template length m and block count N.
type NonOverlappingTemplate struct {
	M int
	N int
}

// DefaultNonOverlappingTemplate returns the documented defaults m=9, N=8.
func DefaultNonOverlappingTemplate() NonOverlappingTemplate {
	return NonOverlappingTemplate{M: 9, N: 8}
}

// NewNonOverlappingTemplate validates m in [2,21] and N in [1,100).
func NewNonOverlappingTemplate(m, n int) (NonOverlappingTemplate, error) {
	if m < 2 || m > 21 {
		return NonOverlappingTemplate{}, fmt.Errorf("testargs: NonOverlappingTemplate.M must be in [2,21], got %d", m)
	}
	if n < 1 || n >= 100 {
		return NonOverlappingTemplate{}, fmt.Errorf("testargs: NonOverlappingTemplate.N must be in [1,100), got %d", n)
	}
	return NonOverlappingTemplate{M: m, N: n}, nil
}

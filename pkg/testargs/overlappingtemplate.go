package testargs

import "fmt"

// OverlappingTemplate carries the all-ones template length m, the block
// length M, the degrees of freedom K, and the legacy-mode switch that
// selects the NIST reference's known-inaccurate pi vector instead of the
// corrected Hamano-Kaneko values.
type OverlappingTemplate struct {
	M      int
	BlockM int
	K      int
	Legacy bool
}

// DefaultOverlappingTemplate returns m=9, M=1032, K=6, legacy disabled.
func DefaultOverlappingTemplate() OverlappingTemplate {
	return OverlappingTemplate{M: 9, BlockM: 1032, K: 6}
}

// NewOverlappingTemplate validates m in [2,21]. In legacy mode, m is
// further restricted to {9,10} and K is forced to 5.
func NewOverlappingTemplate(m, blockM, k int, legacy bool) (OverlappingTemplate, error) {
	if m < 2 || m > 21 {
		return OverlappingTemplate{}, fmt.Errorf("testargs: OverlappingTemplate.M must be in [2,21], got %d", m)
	}
	if legacy {
		if m != 9 && m != 10 {
			return OverlappingTemplate{}, fmt.Errorf("testargs: legacy OverlappingTemplate.M must be 9 or 10, got %d", m)
		}
		k = 5
	}
	if blockM < 1 {
		return OverlappingTemplate{}, fmt.Errorf("testargs: OverlappingTemplate.BlockM must be >= 1, got %d", blockM)
	}
	if k < 1 {
		return OverlappingTemplate{}, fmt.Errorf("testargs: OverlappingTemplate.K must be >= 1, got %d", k)
	}
	return OverlappingTemplate{M: m, BlockM: blockM, K: k, Legacy: legacy}, nil
}

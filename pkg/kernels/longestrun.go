package kernels

import (
	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/errctx"
	"github.com/jihwankim/nist-sts/pkg/numeric"
	"github.com/jihwankim/nist-sts/pkg/result"
)

const longestRunMinN = 128

type longestRunProfile struct {
	m        int
	k        int
	numBlock int
	pi       []float64
	// bucket(v) maps a block's longest-run to a category index in [0,k].
	bucket func(v int) int
}

var longestRunSmall = longestRunProfile{
	m: 8, k: 3, numBlock: 16,
	pi: []float64{0.2148, 0.3672, 0.2305, 0.1875},
	bucket: func(v int) int {
		switch {
		case v <= 1:
			return 0
		case v == 2:
			return 1
		case v == 3:
			return 2
		default:
			return 3
		}
	},
}

var longestRunMedium = longestRunProfile{
	m: 128, k: 5, numBlock: 49,
	pi: []float64{0.1174, 0.2430, 0.2493, 0.1752, 0.1027, 0.1124},
	bucket: func(v int) int {
		switch {
		case v <= 4:
			return 0
		case v == 5:
			return 1
		case v == 6:
			return 2
		case v == 7:
			return 3
		case v == 8:
			return 4
		default:
			return 5
		}
	},
}

var longestRunLarge = longestRunProfile{
	m: 10000, k: 6, numBlock: 75,
	pi: []float64{0.0882, 0.2092, 0.2483, 0.1933, 0.1208, 0.0675, 0.0727},
	bucket: func(v int) int {
		switch {
		case v <= 10:
			return 0
		case v == 11:
			return 1
		case v == 12:
			return 2
		case v == 13:
			return 3
		case v == 14:
			return 4
		case v == 15:
			return 5
		default:
			return 6
		}
	},
}

func selectLongestRunProfile(n int) longestRunProfile {
	switch {
	case n < 6272:
		return longestRunSmall
	case n < 750000:
		return longestRunMedium
	default:
		return longestRunLarge
	}
}

// RunLongestRun examines the longest run of ones within M-bit blocks and
// compares the distribution of run lengths against the NIST reference
// category probabilities.
func RunLongestRun(seq *bitseq.Sequence) (result.TestResult, error) {
	n := seq.Len()
	if n < longestRunMinN {
		return result.TestResult{}, fail(errctx.InvalidParameter, "LongestRun: n=%d below minimum %d", n, longestRunMinN)
	}

	prof := selectLongestRunProfile(n)
	if n < prof.m*prof.numBlock {
		return result.TestResult{}, fail(errctx.InvalidParameter, "LongestRun: n=%d too short for M=%d blocks=%d", n, prof.m, prof.numBlock)
	}

	counts := make([]int, prof.k+1)
	for b := 0; b < prof.numBlock; b++ {
		base := b * prof.m
		longest, cur := 0, 0
		for i := 0; i < prof.m; i++ {
			if seq.Bit(base+i) == 1 {
				cur++
				if cur > longest {
					longest = cur
				}
			} else {
				cur = 0
			}
		}
		counts[prof.bucket(longest)]++
	}

	chi2 := 0.0
	for i, c := range counts {
		expected := float64(prof.numBlock) * prof.pi[i]
		diff := float64(c) - expected
		chi2 += diff * diff / expected
	}

	p, err := numeric.Igamc(float64(prof.k)/2.0, chi2/2.0)
	if err != nil {
		return result.TestResult{}, fail(errctx.GammaFunctionFailed, "LongestRun: %v", err)
	}
	if err := checkFinite("LongestRun", p); err != nil {
		return result.TestResult{}, err
	}
	return result.New(p), nil
}

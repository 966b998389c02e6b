package kernels

import (
	"fmt"
	"math"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/errctx"
	"github.com/jihwankim/nist-sts/pkg/numeric"
	"github.com/jihwankim/nist-sts/pkg/result"
)

const excursionsVariantMinN = 1000000

var excursionsVariantStates = []int{-9, -8, -7, -6, -5, -4, -3, -2, -1, 1, 2, 3, 4, 5, 6, 7, 8, 9}

// RunExcursionsVariant counts, over the whole cumulative-sum random walk,
// the total number of visits to each state x in [-9..-1, 1..9] and checks
// that the total is consistent with the number of cycles J.
func RunExcursionsVariant(seq *bitseq.Sequence) ([]result.TestResult, error) {
	n := seq.Len()
	if n < excursionsVariantMinN {
		return nil, fail(errctx.InvalidParameter, "ExcursionsVariant: n=%d below minimum %d", n, excursionsVariantMinN)
	}

	s := cumulativeWalk(seq)
	j := len(cycleBoundaries(s))
	if j == 0 {
		return nil, fail(errctx.InvalidParameter, "ExcursionsVariant: walk has no cycles")
	}

	visits := make(map[int]int, len(excursionsVariantStates))
	for _, x := range excursionsVariantStates {
		visits[x] = 0
	}
	for _, v := range s[1:] {
		if _, ok := visits[v]; ok {
			visits[v]++
		}
	}

	results := make([]result.TestResult, len(excursionsVariantStates))
	for i, x := range excursionsVariantStates {
		ax := x
		if ax < 0 {
			ax = -ax
		}
		xi := float64(visits[x])
		jf := float64(j)
		p := numeric.Erfc(math.Abs(xi-jf) / math.Sqrt(2*jf*(4*float64(ax)-2)))
		if err := checkFinite("ExcursionsVariant", p); err != nil {
			return nil, err
		}
		results[i] = result.WithComment(p, fmt.Sprintf("x = %+d", x))
	}
	return results, nil
}

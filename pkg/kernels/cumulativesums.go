package kernels

import (
	"math"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/errctx"
	"github.com/jihwankim/nist-sts/pkg/numeric"
	"github.com/jihwankim/nist-sts/pkg/result"
)

const cumulativeSumsMinN = 100

// RunCumulativeSums walks the cumulative sum of the +-1-mapped sequence,
// both forward and backward, and checks that the maximal excursion from
// zero is consistent with a random walk.
func RunCumulativeSums(seq *bitseq.Sequence) ([]result.TestResult, error) {
	n := seq.Len()
	if n < cumulativeSumsMinN {
		return nil, fail(errctx.InvalidParameter, "CumulativeSums: n=%d below minimum %d", n, cumulativeSumsMinN)
	}

	x := make([]int, n)
	for i := 0; i < n; i++ {
		if seq.Bit(i) == 1 {
			x[i] = 1
		} else {
			x[i] = -1
		}
	}

	forwardZ := maxPartialSum(x, false)
	backwardZ := maxPartialSum(x, true)

	pf, err := cumulativeSumsPValue(n, forwardZ)
	if err != nil {
		return nil, err
	}
	pb, err := cumulativeSumsPValue(n, backwardZ)
	if err != nil {
		return nil, err
	}
	return []result.TestResult{result.New(pf), result.New(pb)}, nil
}

func maxPartialSum(x []int, reverse bool) int {
	s, maxAbs := 0, 0
	n := len(x)
	for i := 0; i < n; i++ {
		idx := i
		if reverse {
			idx = n - 1 - i
		}
		s += x[idx]
		abs := s
		if abs < 0 {
			abs = -abs
		}
		if abs > maxAbs {
			maxAbs = abs
		}
	}
	return maxAbs
}

func stdNormalCDF(x float64) float64 {
	return 0.5 * (1 + numeric.Erf(x/math.Sqrt2))
}

func cumulativeSumsPValue(n, z int) (float64, error) {
	if z == 0 {
		return 1.0, nil
	}
	sqrtN := math.Sqrt(float64(n))
	fz := float64(z)

	sum1 := 0.0
	start1 := int(math.Floor((-float64(n)/fz + 1) / 4))
	end1 := int(math.Floor((float64(n)/fz - 1) / 4))
	for k := start1; k <= end1; k++ {
		sum1 += stdNormalCDF((4*float64(k)+1)*fz/sqrtN) - stdNormalCDF((4*float64(k)-1)*fz/sqrtN)
	}

	sum2 := 0.0
	start2 := int(math.Floor((-float64(n)/fz - 3) / 4))
	end2 := end1
	for k := start2; k <= end2; k++ {
		sum2 += stdNormalCDF((4*float64(k)+3)*fz/sqrtN) - stdNormalCDF((4*float64(k)+1)*fz/sqrtN)
	}

	p := 1.0 - sum1 + sum2
	if err := checkFinite("CumulativeSums", p); err != nil {
		return 0, err
	}
	return p, nil
}

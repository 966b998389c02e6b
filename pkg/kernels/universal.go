package kernels

import (
	"math"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/errctx"
	"github.com/jihwankim/nist-sts/pkg/numeric"
	"github.com/jihwankim/nist-sts/pkg/result"
)

const universalMinN = 2020

// universalExpected and universalVariance are the NIST reference tables of
// mean and variance for an ideal random source, indexed by L.
var universalExpected = map[int]float64{
	1: 0.7326495, 2: 1.5374383, 3: 2.4016068, 4: 3.3112247,
	5: 4.2534266, 6: 5.2177052, 7: 6.1962507, 8: 7.1836656,
	9: 8.1764248, 10: 9.1723243, 11: 10.170032, 12: 11.168765,
	13: 12.168070, 14: 13.167693, 15: 14.167488, 16: 15.167379,
}

var universalVariance = map[int]float64{
	1: 0.690, 2: 1.338, 3: 1.901, 4: 2.358, 5: 2.705, 6: 2.954,
	7: 3.125, 8: 3.238, 9: 3.311, 10: 3.356, 11: 3.384, 12: 3.401,
	13: 3.410, 14: 3.416, 15: 3.419, 16: 3.421,
}

// universalBlockLen picks L and Q from the NIST reference table keyed on
// sequence length.
func universalBlockLen(n int) (l, q int) {
	type entry struct {
		minN, l int
	}
	table := []entry{
		{1059061760, 16}, {496435200, 15}, {231669760, 14}, {107560960, 13},
		{49643520, 12}, {22753280, 11}, {10342400, 10}, {4654080, 9},
		{2068480, 8}, {904960, 7}, {387840, 6},
	}
	for _, e := range table {
		if n >= e.minN {
			return e.l, 10 * (1 << uint(e.l))
		}
	}
	return 6, 10 * (1 << 6)
}

// RunUniversal implements Maurer's Universal Statistical test: it measures
// the compressibility of the sequence by timing how far apart repeated
// L-bit patterns recur.
func RunUniversal(seq *bitseq.Sequence) (result.TestResult, error) {
	n := seq.Len()
	if n < universalMinN {
		return result.TestResult{}, fail(errctx.InvalidParameter, "Universal: n=%d below minimum %d", n, universalMinN)
	}

	l, q := universalBlockLen(n)
	if n < (q+1000)*l {
		return result.TestResult{}, fail(errctx.InvalidParameter, "Universal: n=%d too short for L=%d Q=%d", n, l, q)
	}

	numBlocksTotal := n / l
	k := numBlocksTotal - q
	if k <= 0 {
		return result.TestResult{}, fail(errctx.InvalidParameter, "Universal: no test blocks remain after initialization (n=%d L=%d Q=%d)", n, l, q)
	}

	tableSize := 1 << uint(l)
	table := make([]int, tableSize)

	blockValue := func(i int) int {
		v := 0
		base := i * l
		for b := 0; b < l; b++ {
			v = (v << 1) | seq.Bit(base+b)
		}
		return v
	}

	for i := 0; i < q; i++ {
		table[blockValue(i)] = i
	}

	sum := 0.0
	for i := q; i < q+k; i++ {
		v := blockValue(i)
		sum += math.Log2(float64(i - table[v]))
		table[v] = i
	}
	f := sum / float64(k)

	expected, ok := universalExpected[l]
	if !ok {
		return result.TestResult{}, fail(errctx.InvalidParameter, "Universal: no reference constants for L=%d", l)
	}
	variance := universalVariance[l]

	c := 0.7 - 0.8/float64(l) + (4.0+32.0/float64(l))*math.Pow(float64(k), -3.0/float64(l))/15.0
	sigma := c * math.Sqrt(variance/float64(k))

	p := numeric.Erfc(math.Abs((f-expected)/(sigma*math.Sqrt2)))
	if err := checkFinite("Universal", p); err != nil {
		return result.TestResult{}, err
	}
	return result.New(p), nil
}

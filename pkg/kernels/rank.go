package kernels

import (
	"math"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
	"github.com/jihwankim/nist-sts/pkg/errctx"
	"github.com/jihwankim/nist-sts/pkg/numeric"
	"github.com/jihwankim/nist-sts/pkg/result"
)

const rankMinN = 38912

const (
	rankProbFull    = 0.2888
	rankProbFullM1  = 0.5776
	rankProbDeficit = 0.1336
)

// RunRank partitions the sequence into disjoint 32x32 bit matrices and
// compares the distribution of their GF(2) ranks against the NIST
// reference probabilities for full rank, rank-1, and everything below.
func RunRank(seq *bitseq.Sequence) (result.TestResult, error) {
	n := seq.Len()
	if n < rankMinN {
		return result.TestResult{}, fail(errctx.InvalidParameter, "Rank: n=%d below minimum %d", n, rankMinN)
	}

	numMatrices := n / (32 * 32)
	var full, fullM1, deficit int

	for mi := 0; mi < numMatrices; mi++ {
		var rows [32]uint32
		base := mi * 32 * 32
		for r := 0; r < 32; r++ {
			var row uint32
			for c := 0; c < 32; c++ {
				row <<= 1
				row |= uint32(seq.Bit(base + r*32 + c))
			}
			rows[r] = row
		}
		switch numeric.GF2Rank32x32(rows) {
		case 32:
			full++
		case 31:
			fullM1++
		default:
			deficit++
		}
	}

	chi2 := chiTerm(full, numMatrices, rankProbFull) +
		chiTerm(fullM1, numMatrices, rankProbFullM1) +
		chiTerm(deficit, numMatrices, rankProbDeficit)

	p := math.Exp(-chi2 / 2.0)
	if err := checkFinite("Rank", p); err != nil {
		return result.TestResult{}, err
	}
	return result.New(p), nil
}

func chiTerm(observed, numMatrices int, prob float64) float64 {
	expected := float64(numMatrices) * prob
	diff := float64(observed) - expected
	return diff * diff / expected
}

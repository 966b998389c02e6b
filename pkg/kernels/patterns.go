package kernels

import "github.com/jihwankim/nist-sts/pkg/bitseq"

// circularPatternFrequencies counts the occurrences of every k-bit
// overlapping pattern in seq, treating the sequence as circular (the
// first k-1 bits are conceptually appended to the end). It backs both
// Serial and Approximate Entropy, which both need this statistic for two
// adjacent block lengths.
func circularPatternFrequencies(seq *bitseq.Sequence, k int) []int {
	n := seq.Len()
	counts := make([]int, 1<<uint(k))
	for i := 0; i < n; i++ {
		v := 0
		for j := 0; j < k; j++ {
			v = (v << 1) | seq.Bit((i+j)%n)
		}
		counts[v]++
	}
	return counts
}

func sumSquares(counts []int) float64 {
	sum := 0.0
	for _, c := range counts {
		sum += float64(c) * float64(c)
	}
	return sum
}

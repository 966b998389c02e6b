package numeric

import "github.com/bits-and-blooms/bitset"

// BerlekampMassey computes the length of the shortest LFSR (over GF(2))
// that generates the given finite bit sequence. It backs the Linear
// Complexity kernel (#10).
//
// The feedback polynomials C(x) and B(x) are represented as
// *bitset.BitSet rather than []int: an arbitrary-length GF(2) vector is
// exactly what that type is for (contrast the fixed 32-bit rows of the
// Binary Matrix Rank kernel, which use plain uint32 instead).
func BerlekampMassey(bits []int) int {
	n := len(bits)
	if n == 0 {
		return 0
	}

	c := bitset.New(uint(n + 1))
	b := bitset.New(uint(n + 1))
	c.Set(0)
	b.Set(0)

	l := 0
	m := 1

	s := make([]int, n)
	copy(s, bits)

	for i := 0; i < n; i++ {
		d := s[i]
		for j := 1; j <= l; j++ {
			if c.Test(uint(j)) {
				d ^= s[i-j]
			}
		}

		if d == 0 {
			m++
			continue
		}

		t := cloneBitset(c, n+1)

		xorShifted(c, b, m, n+1)

		if 2*l <= i {
			l = i + 1 - l
			b = t
			m = 1
		} else {
			m++
		}
	}

	return l
}

// xorShifted performs C[k+shift] ^= B[k] for every k where B(x)'s bit is
// set, i.e. C ^= B*x^shift, truncated to width bits.
func xorShifted(c, b *bitset.BitSet, shift, width int) {
	for k := 0; k+shift < width; k++ {
		if !b.Test(uint(k)) {
			continue
		}
		idx := uint(k + shift)
		if c.Test(idx) {
			c.Clear(idx)
		} else {
			c.Set(idx)
		}
	}
}

func cloneBitset(src *bitset.BitSet, width int) *bitset.BitSet {
	dst := bitset.New(uint(width))
	for i := 0; i < width; i++ {
		if src.Test(uint(i)) {
			dst.Set(uint(i))
		}
	}
	return dst
}

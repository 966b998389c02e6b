package numeric

import "testing"

func TestGF2RankIdentity(t *testing.T) {
	var m [32]uint32
	for i := range m {
		m[i] = uint32(1) << uint(31-i)
	}
	if got := GF2Rank32x32(m); got != 32 {
		t.Fatalf("rank of identity matrix = %d, want 32", got)
	}
}

func TestGF2RankAllOnes(t *testing.T) {
	var m [32]uint32
	for i := range m {
		m[i] = 0xFFFFFFFF
	}
	if got := GF2Rank32x32(m); got != 1 {
		t.Fatalf("rank of all-ones matrix = %d, want 1", got)
	}
}

func TestGF2RankAllZero(t *testing.T) {
	var m [32]uint32
	if got := GF2Rank32x32(m); got != 0 {
		t.Fatalf("rank of zero matrix = %d, want 0", got)
	}
}

func TestGF2RankDuplicateRow(t *testing.T) {
	var m [32]uint32
	for i := range m {
		m[i] = uint32(1) << uint(31-i)
	}
	m[1] = m[0] // duplicate row drops rank by exactly one
	if got := GF2Rank32x32(m); got != 31 {
		t.Fatalf("rank with one duplicate row = %d, want 31", got)
	}
}

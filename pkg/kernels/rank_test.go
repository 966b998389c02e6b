package kernels

import (
	"testing"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
)

// Binary Matrix Rank on 38912 bits all equal to 1: strong rejection.
func TestRankAllOnesRejects(t *testing.T) {
	bits := make([]bool, 38912)
	for i := range bits {
		bits[i] = true
	}
	seq := bitseq.FromBools(bits)
	got, err := RunRank(seq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.P > 1e-6 {
		t.Errorf("p = %v, want ~0", got.P)
	}
}

func TestRankRejectsShortInput(t *testing.T) {
	seq := bitseq.FromBools(alternatingBits(100))
	if _, err := RunRank(seq); err == nil {
		t.Error("n below minimum should be rejected")
	}
}

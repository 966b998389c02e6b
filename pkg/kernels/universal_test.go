package kernels

import (
	"testing"

	"github.com/jihwankim/nist-sts/pkg/bitseq"
)

func TestRunUniversalOnPseudoRandomSequence(t *testing.T) {
	seq := bitseq.FromBools(pseudoRandomBits(400000, 3))
	got, err := RunUniversal(seq)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.P < 0 || got.P > 1 {
		t.Errorf("p = %v out of [0,1]", got.P)
	}
}

func TestRunUniversalRejectsShortInput(t *testing.T) {
	seq := bitseq.FromBools(alternatingBits(100))
	if _, err := RunUniversal(seq); err == nil {
		t.Error("n below minimum should be rejected")
	}
}

func TestUniversalBlockLenSelectsSmallestTableEntry(t *testing.T) {
	l, q := universalBlockLen(400000)
	if l != 6 || q != 640 {
		t.Errorf("universalBlockLen(400000) = (%d,%d), want (6,640)", l, q)
	}
}
